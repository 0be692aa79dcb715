package service

import (
	"fmt"
	"log"

	"github.com/yourusername/lms-api/internal/domain/repository"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// StudentTrainingService управляет привязкой студентов к программам обучения
type StudentTrainingService struct {
	trainingRepo repository.StudentTrainingRepository
}

// NewStudentTrainingService создает новый сервис привязок
func NewStudentTrainingService(trainingRepo repository.StudentTrainingRepository) *StudentTrainingService {
	return &StudentTrainingService{trainingRepo: trainingRepo}
}

// ApplyMapping применяет изменения привязки одной операцией: добавляет
// перечисленных в mapIDs, снимает перечисленных в unmapIDs. Хотя бы один
// из списков должен быть непустым.
func (s *StudentTrainingService) ApplyMapping(trainingID uint, mapIDs, unmapIDs []uint) error {
	if trainingID == 0 {
		return fmt.Errorf("%w: training_id is required", apperrors.ErrValidation)
	}
	if len(mapIDs) == 0 && len(unmapIDs) == 0 {
		return fmt.Errorf("%w: no students to map or unmap", apperrors.ErrValidation)
	}

	if len(mapIDs) > 0 {
		if err := s.trainingRepo.MapStudents(trainingID, mapIDs); err != nil {
			return fmt.Errorf("map students: %w", err)
		}
	}
	if len(unmapIDs) > 0 {
		if err := s.trainingRepo.UnmapStudents(trainingID, unmapIDs); err != nil {
			return fmt.Errorf("unmap students: %w", err)
		}
	}

	log.Printf("[StudentTrainingService] Программа #%d: привязано %d, отвязано %d",
		trainingID, len(mapIDs), len(unmapIDs))
	return nil
}

// MappingStatus возвращает пользователей компании с отметкой привязки к программе
func (s *StudentTrainingService) MappingStatus(companyID, trainingID uint) ([]repository.MappingStatusRow, error) {
	if companyID == 0 || trainingID == 0 {
		return nil, fmt.Errorf("%w: company_id and training_id are required", apperrors.ErrValidation)
	}
	rows, err := s.trainingRepo.MappingStatus(companyID, trainingID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return rows, nil
}
