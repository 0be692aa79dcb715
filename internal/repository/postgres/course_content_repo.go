package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// CourseContentRepo реализует repository.CourseContentRepository
type CourseContentRepo struct {
	db *gorm.DB
}

// NewCourseContentRepo создает новый репозиторий учебного плана
func NewCourseContentRepo(db *gorm.DB) *CourseContentRepo {
	return &CourseContentRepo{db: db}
}

// Create сохраняет новую запись учебного плана
func (r *CourseContentRepo) Create(content *entity.CourseContent) error {
	return r.db.Create(content).Error
}

// List возвращает весь учебный план, отсортированный по дате
func (r *CourseContentRepo) List() ([]entity.CourseContent, error) {
	var contents []entity.CourseContent
	err := r.db.Order("date").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// Update перезаписывает все поля записи
func (r *CourseContentRepo) Update(content *entity.CourseContent) error {
	result := r.db.Model(&entity.CourseContent{}).
		Where("id = ?", content.ID).
		Updates(map[string]interface{}{
			"date":       content.Date,
			"day":        content.Day,
			"day_number": content.DayNumber,
			"skill":      content.Skill,
			"topic":      content.Topic,
			"assignment": content.Assignment,
			"assessment": content.Assessment,
			"project":    content.Project,
			"status":     content.Status,
			"notes":      content.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет запись учебного плана
func (r *CourseContentRepo) Delete(id uint) error {
	return r.db.Delete(&entity.CourseContent{}, id).Error
}
