package service

import (
	"fmt"
	"time"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// StandupService предоставляет методы для работы со standup-заметками
type StandupService struct {
	noteRepo repository.StandupNoteRepository
	userRepo repository.UserRepository
}

// NewStandupService создает новый сервис standup-заметок
func NewStandupService(noteRepo repository.StandupNoteRepository, userRepo repository.UserRepository) *StandupService {
	return &StandupService{noteRepo: noteRepo, userRepo: userRepo}
}

// CreateNote сохраняет заметку студента за день
func (s *StandupService) CreateNote(note *entity.StandupNote) error {
	if note.UserID == 0 || note.StandupDate.IsZero() {
		return fmt.Errorf("%w: user_id and standup_date are required", apperrors.ErrValidation)
	}
	return s.noteRepo.Create(note)
}

// GetNote возвращает заметку по ID
func (s *StandupService) GetNote(id uint) (*entity.StandupNote, error) {
	return s.noteRepo.GetByID(id)
}

// ListNotes возвращает все заметки с именами авторов
func (s *StandupService) ListNotes() ([]entity.StandupNoteWithUser, error) {
	return s.noteRepo.List()
}

// UpdateNote обновляет текстовые поля заметки
func (s *StandupService) UpdateNote(id uint, yesterdayWork, todayPlan, blockers string) error {
	return s.noteRepo.UpdateContent(id, yesterdayWork, todayPlan, blockers)
}

// DeleteNote удаляет заметку
func (s *StandupService) DeleteNote(id uint) error {
	return s.noteRepo.Delete(id)
}

// WeeklyRow - сводная строка недельного отчета: студент и его заметки,
// сгруппированные по дате (ключ в формате YYYY-MM-DD)
type WeeklyRow struct {
	UserID   uint                           `json:"user_id"`
	Username string                         `json:"username"`
	Notes    map[string]*entity.StandupNote `json:"notes"`
}

// WeeklyOverview строит админскую сводку за период: каждый активный студент
// присутствует в результате ровно один раз, даже если заметок за период у него
// нет. Границы периода включительные.
func (s *StandupService) WeeklyOverview(start, end time.Time) ([]WeeklyRow, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
	}

	students, err := s.userRepo.ListActiveStudents()
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	notes, err := s.noteRepo.ListBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	byUser := make(map[uint]map[string]*entity.StandupNote, len(students))
	for i := range notes {
		n := &notes[i]
		day := n.StandupDate.Format("2006-01-02")
		if byUser[n.UserID] == nil {
			byUser[n.UserID] = make(map[string]*entity.StandupNote)
		}
		byUser[n.UserID][day] = n
	}

	rows := make([]WeeklyRow, 0, len(students))
	for _, st := range students {
		userNotes := byUser[st.ID]
		if userNotes == nil {
			userNotes = map[string]*entity.StandupNote{}
		}
		rows = append(rows, WeeklyRow{
			UserID:   st.ID,
			Username: st.Username,
			Notes:    userNotes,
		})
	}
	return rows, nil
}
