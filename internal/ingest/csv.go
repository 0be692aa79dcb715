package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// CSVExtractor построчно читает текст с разделителями. Первая строка -
// заголовок с именами шести полей; колонки сопоставляются по имени,
// лишние игнорируются. Строки без какого-либо из шести полей молча
// исключаются из потока (это не ошибка - они просто не отдаются).
type CSVExtractor struct {
	content []byte
}

// NewCSVExtractor создает экстрактор для CSV-содержимого
func NewCSVExtractor(content []byte) *CSVExtractor {
	return &CSVExtractor{content: content}
}

// Records отдает кандидатов по одному, не материализуя весь файл
func (e *CSVExtractor) Records() iter.Seq2[QuestionRecord, error] {
	return func(yield func(QuestionRecord, error) bool) {
		reader := csv.NewReader(bytes.NewReader(e.content))
		reader.FieldsPerRecord = -1 // Длина строк проверяется по заголовку, а не ридером

		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return // Пустой файл - пустой поток
		}
		if err != nil {
			yield(QuestionRecord{}, fmt.Errorf("read csv header: %w", err))
			return
		}

		columns := columnIndex(header)

		for {
			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(QuestionRecord{}, fmt.Errorf("read csv row: %w", err))
				return
			}

			rec := recordFromRow(columns, row)
			if !rec.Complete() {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// columnIndex сопоставляет имена полей с номерами колонок по заголовку
func columnIndex(header []string) map[string]int {
	columns := make(map[string]int, len(RecordFields))
	for i, name := range header {
		columns[name] = i
	}
	return columns
}

// recordFromRow собирает кандидата из строки файла по карте колонок.
// Отсутствующая в заголовке или слишком короткая строка дает пустое поле.
func recordFromRow(columns map[string]int, row []string) QuestionRecord {
	values := make(map[string]string, len(RecordFields))
	for _, field := range RecordFields {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			continue
		}
		values[field] = row[idx]
	}
	return recordFromValues(values)
}
