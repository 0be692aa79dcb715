package service

import (
	"fmt"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// CourseContentService управляет учебным планом курса
type CourseContentService struct {
	contentRepo repository.CourseContentRepository
}

// NewCourseContentService создает новый сервис учебного плана
func NewCourseContentService(contentRepo repository.CourseContentRepository) *CourseContentService {
	return &CourseContentService{contentRepo: contentRepo}
}

// CreateContent добавляет запись учебного плана
func (s *CourseContentService) CreateContent(content *entity.CourseContent) error {
	if content.Date.IsZero() || content.DayNumber == 0 {
		return fmt.Errorf("%w: date and day_number are required", apperrors.ErrValidation)
	}
	return s.contentRepo.Create(content)
}

// ListContent возвращает весь учебный план по датам
func (s *CourseContentService) ListContent() ([]entity.CourseContent, error) {
	return s.contentRepo.List()
}

// UpdateContent перезаписывает запись учебного плана целиком
func (s *CourseContentService) UpdateContent(content *entity.CourseContent) error {
	if content.ID == 0 {
		return fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	return s.contentRepo.Update(content)
}

// DeleteContent удаляет запись учебного плана
func (s *CourseContentService) DeleteContent(id uint) error {
	return s.contentRepo.Delete(id)
}
