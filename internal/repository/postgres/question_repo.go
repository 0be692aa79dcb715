package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateBatch сохраняет пакет вопросов одной вставкой
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Устанавливаем кодировку UTF-8 внутри транзакции
		if err := tx.Exec("SET CLIENT_ENCODING TO 'UTF8'").Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
}

// GetByTestID возвращает все вопросы теста
func (r *QuestionRepo) GetByTestID(testID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("test_id = ?", testID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByTestID возвращает количество вопросов теста
func (r *QuestionRepo) CountByTestID(testID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("test_id = ?", testID).
		Count(&count).Error
	return count, err
}
