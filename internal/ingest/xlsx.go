package ingest

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor читает первый лист книги Excel. Первая строка листа -
// заголовок с именами шести полей; дальше семантика та же, что у CSV:
// неполные строки исключаются из потока без ошибки.
type XLSXExtractor struct {
	content []byte
}

// NewXLSXExtractor создает экстрактор для XLSX-содержимого
func NewXLSXExtractor(content []byte) *XLSXExtractor {
	return &XLSXExtractor{content: content}
}

// Records отдает кандидатов со строк первого листа
func (e *XLSXExtractor) Records() iter.Seq2[QuestionRecord, error] {
	return func(yield func(QuestionRecord, error) bool) {
		f, err := excelize.OpenReader(bytes.NewReader(e.content))
		if err != nil {
			yield(QuestionRecord{}, fmt.Errorf("open workbook: %w", err))
			return
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return
		}

		rows, err := f.GetRows(sheets[0])
		if err != nil {
			yield(QuestionRecord{}, fmt.Errorf("read sheet %q: %w", sheets[0], err))
			return
		}
		if len(rows) == 0 {
			return
		}

		columns := columnIndex(rows[0])

		for _, row := range rows[1:] {
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
