package entity

import (
	"time"
)

// Test представляет именованный тест с ограничением по времени,
// привязанный к программе обучения
type Test struct {
	ID         uint       `gorm:"primaryKey;column:test_id" json:"test_id"`
	TrainingID uint       `gorm:"not null;index" json:"training_id"`
	TestName   string     `gorm:"size:255;not null;uniqueIndex:idx_test_master_test_name" json:"test_name"`
	Duration   int        `gorm:"not null" json:"duration"` // Длительность в минутах
	FromDate   *time.Time `gorm:"type:date" json:"from_date,omitempty"`
	ToDate     *time.Time `gorm:"type:date" json:"to_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Test) TableName() string {
	return "test_master"
}

// HasValidityWindow проверяет, задано ли окно доступности теста
func (t *Test) HasValidityWindow() bool {
	return t.FromDate != nil || t.ToDate != nil
}

// IsAvailableAt проверяет, попадает ли момент времени в окно доступности.
// Не заданная граница окна считается открытой.
func (t *Test) IsAvailableAt(at time.Time) bool {
	if t.FromDate != nil && at.Before(*t.FromDate) {
		return false
	}
	if t.ToDate != nil && at.After(*t.ToDate) {
		return false
	}
	return true
}
