package service

import "errors"

// Ошибки конвейера загрузки тестов и каталога
var (
	// ErrMissingFields возвращается, когда в запросе нет обязательных полей
	// (training_id, test_name, duration). Текст ошибки называет недостающие.
	ErrMissingFields = errors.New("missing required fields")

	// ErrNoValidQuestions возвращается, когда после фильтрации не осталось
	// ни одного полного вопроса. Тест к этому моменту уже создан - вызывающая
	// сторона наблюдает "тест есть, вопросов 0" как отдельный исход.
	ErrNoValidQuestions = errors.New("no valid questions found")

	// ErrNoFieldsProvided возвращается на частичное обновление без полей
	ErrNoFieldsProvided = errors.New("no fields to update")
)
