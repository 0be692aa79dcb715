package repository

import (
	"github.com/yourusername/lms-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами тестов
type QuestionRepository interface {
	// CreateBatch сохраняет пакет вопросов одной вставкой
	CreateBatch(questions []entity.Question) error
	// GetByTestID возвращает все вопросы теста в порядке создания
	GetByTestID(testID uint) ([]entity.Question, error)
	// CountByTestID возвращает количество вопросов теста
	CountByTestID(testID uint) (int64, error)
}
