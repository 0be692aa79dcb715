package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// StandupNoteRepo реализует repository.StandupNoteRepository
type StandupNoteRepo struct {
	db *gorm.DB
}

// NewStandupNoteRepo создает новый репозиторий standup-заметок
func NewStandupNoteRepo(db *gorm.DB) *StandupNoteRepo {
	return &StandupNoteRepo{db: db}
}

// Create сохраняет новую заметку
func (r *StandupNoteRepo) Create(note *entity.StandupNote) error {
	return r.db.Create(note).Error
}

// GetByID возвращает заметку по ID
func (r *StandupNoteRepo) GetByID(id uint) (*entity.StandupNote, error) {
	var note entity.StandupNote
	err := r.db.First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// List возвращает все заметки вместе с именем пользователя
func (r *StandupNoteRepo) List() ([]entity.StandupNoteWithUser, error) {
	var notes []entity.StandupNoteWithUser
	err := r.db.Table("standup_notes s").
		Select("s.*, u.username").
		Joins("JOIN users u ON s.user_id = u.id").
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListBetween возвращает заметки за период (границы включительно)
func (r *StandupNoteRepo) ListBetween(start, end time.Time) ([]entity.StandupNote, error) {
	var notes []entity.StandupNote
	err := r.db.Where("standup_date BETWEEN ? AND ?", start, end).
		Order("standup_date").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateContent обновляет текстовые поля заметки
func (r *StandupNoteRepo) UpdateContent(id uint, yesterdayWork, todayPlan, blockers string) error {
	result := r.db.Model(&entity.StandupNote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"yesterday_work": yesterdayWork,
			"today_plan":     todayPlan,
			"blockers":       blockers,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет заметку
func (r *StandupNoteRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.StandupNote{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
