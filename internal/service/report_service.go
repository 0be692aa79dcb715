package service

import (
	"fmt"

	"github.com/yourusername/lms-api/internal/domain/repository"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// Типы отчетов по баллам
const (
	ReportByCourse  = "course"
	ReportByTest    = "test"
	ReportByStudent = "student"
)

// ReportService строит отчеты по баллам за тесты
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService создает новый сервис отчетов
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Scores возвращает отчет по баллам для указанного субъекта.
// Неизвестный тип отчета - ErrValidation, пустой результат - ErrNotFound.
func (s *ReportService) Scores(reportType string, subjectID uint) ([]repository.ScoreRow, error) {
	if subjectID == 0 {
		return nil, fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}

	var (
		rows []repository.ScoreRow
		err  error
	)
	switch reportType {
	case ReportByCourse:
		rows, err = s.reportRepo.CourseScores(subjectID)
	case ReportByTest:
		rows, err = s.reportRepo.TestScores(subjectID)
	case ReportByStudent:
		rows, err = s.reportRepo.StudentScores(subjectID)
	default:
		return nil, fmt.Errorf("%w: unknown report type %q", apperrors.ErrValidation, reportType)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return rows, nil
}
