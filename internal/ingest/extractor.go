package ingest

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// Extractor порождает конечную последовательность кандидатов из одного
// источника. Последовательность перезапускаема: каждый вызов Records
// разбирает исходные данные заново. Экстракторы не валидируют кандидатов -
// извлечение и валидация разделены; файловые источники лишь молча
// пропускают строки с недостающими полями.
type Extractor interface {
	Records() iter.Seq2[QuestionRecord, error]
}

// FileUpload - прикрепленный к запросу бинарный blob.
// Потребляется один раз за запрос, долговременно не хранится.
type FileUpload struct {
	Name    string // Оригинальное имя файла (по его расширению выбирается экстрактор)
	Content []byte
}

// Select выбирает единственный экстрактор для запроса.
// Если прикреплен файл, используется он - даже когда одновременно передан
// inline-массив (явный tie-break в пользу файла, не ошибка).
func Select(file *FileUpload, inline []QuestionRecord) (Extractor, error) {
	if file != nil {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Name), "."))
		switch ext {
		case "csv":
			return NewCSVExtractor(file.Content), nil
		case "xlsx":
			return NewXLSXExtractor(file.Content), nil
		case "pdf":
			return NewDocumentExtractor(DocumentPDF, file.Content), nil
		case "docx":
			return NewDocumentExtractor(DocumentDOCX, file.Content), nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
	}

	if len(inline) > 0 {
		return NewInlineExtractor(inline)
	}

	return nil, ErrNoInput
}
