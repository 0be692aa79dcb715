package ingest

import (
	"fmt"
	"iter"
	"strings"
)

// InlineExtractor отдает кандидатов из массива, переданного прямо в теле
// запроса. В отличие от файловых источников валидация здесь жадная:
// неполная запись обнаруживается еще на этапе конструирования, до каких-либо
// записей в хранилище.
type InlineExtractor struct {
	records []QuestionRecord
}

// NewInlineExtractor создает экстрактор для inline-массива.
// Возвращает ErrIncompleteRecord с номером записи и именами недостающих
// полей, если хотя бы одна запись неполна.
func NewInlineExtractor(records []QuestionRecord) (*InlineExtractor, error) {
	for i, rec := range records {
		if missing := rec.MissingFields(); len(missing) > 0 {
			return nil, fmt.Errorf("%w: question #%d is missing %s",
				ErrIncompleteRecord, i+1, strings.Join(missing, ", "))
		}
	}
	return &InlineExtractor{records: records}, nil
}

// Records отдает записи массива 1:1
func (e *InlineExtractor) Records() iter.Seq2[QuestionRecord, error] {
	return func(yield func(QuestionRecord, error) bool) {
		for _, rec := range e.records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}
