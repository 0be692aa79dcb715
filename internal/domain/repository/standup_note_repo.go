package repository

import (
	"time"

	"github.com/yourusername/lms-api/internal/domain/entity"
)

// StandupNoteRepository определяет методы для работы со standup-заметками
type StandupNoteRepository interface {
	Create(note *entity.StandupNote) error
	GetByID(id uint) (*entity.StandupNote, error)
	// List возвращает все заметки вместе с именем пользователя
	List() ([]entity.StandupNoteWithUser, error)
	// ListBetween возвращает заметки за период (границы включительно)
	ListBetween(start, end time.Time) ([]entity.StandupNote, error)
	// UpdateContent обновляет текстовые поля заметки.
	// Возвращает apperrors.ErrNotFound, если заметка не существует.
	UpdateContent(id uint, yesterdayWork, todayPlan, blockers string) error
	// Delete удаляет заметку. Возвращает apperrors.ErrNotFound, если её нет.
	Delete(id uint) error
}
