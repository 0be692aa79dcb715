package entity

import (
	"time"
)

// StandupNote представляет ежедневную standup-заметку студента
type StandupNote struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	StandupDate   time.Time `gorm:"type:date;not null;index" json:"standup_date"`
	YesterdayWork string    `gorm:"type:text" json:"yesterday_work"`
	TodayPlan     string    `gorm:"type:text" json:"today_plan"`
	Blockers      string    `gorm:"type:text" json:"blockers"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (StandupNote) TableName() string {
	return "standup_notes"
}

// StandupNoteWithUser - заметка вместе с именем пользователя (для списков)
type StandupNoteWithUser struct {
	StandupNote
	Username string `json:"username"`
}
