package entity

import (
	"time"
)

// CourseContent представляет запись учебного плана курса на один день
type CourseContent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	Day        string    `gorm:"size:20" json:"day"`
	DayNumber  int       `gorm:"not null" json:"day_number"`
	Skill      string    `gorm:"size:255" json:"skill"`
	Topic      string    `gorm:"size:255" json:"topic"`
	Assignment string    `gorm:"type:text" json:"assignment"`
	Assessment string    `gorm:"type:text" json:"assessment"`
	Project    string    `gorm:"type:text" json:"project"`
	Status     string    `gorm:"size:50" json:"status"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (CourseContent) TableName() string {
	return "course_content"
}
