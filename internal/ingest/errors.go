package ingest

import "errors"

// Ошибки выбора источника и извлечения кандидатов
var (
	// ErrUnsupportedFormat возвращается для файлов с неизвестным расширением
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoInput возвращается, когда не передан ни файл, ни inline-массив
	ErrNoInput = errors.New("no file or questions provided")

	// ErrIncompleteRecord возвращается inline-экстрактором при первой же
	// неполной записи: для этого источника валидация жадная и одна плохая
	// запись отклоняет весь вызов целиком.
	ErrIncompleteRecord = errors.New("all question fields are required")
)
