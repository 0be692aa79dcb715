package repository

import (
	"github.com/yourusername/lms-api/internal/domain/entity"
)

// CourseContentRepository определяет методы для работы с учебным планом
type CourseContentRepository interface {
	Create(content *entity.CourseContent) error
	// List возвращает весь учебный план, отсортированный по дате
	List() ([]entity.CourseContent, error)
	// Update перезаписывает все поля записи.
	// Возвращает apperrors.ErrNotFound, если записи нет.
	Update(content *entity.CourseContent) error
	Delete(id uint) error
}
