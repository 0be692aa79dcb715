package entity

import (
	"time"
)

// Question представляет сохраненный вопрос теста с вариантами ответов.
// Вопросы создаются только пакетно в момент загрузки теста и далее
// в рамках этой подсистемы не изменяются.
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TestID        uint      `gorm:"not null;index" json:"test_id"`
	TrainingID    uint      `gorm:"not null;index" json:"training_id"` // Денормализованная ссылка, копируется из теста
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Option1       string    `gorm:"column:option_1;type:text;not null" json:"option_1"`
	Option2       string    `gorm:"column:option_2;type:text;not null" json:"option_2"`
	Option3       string    `gorm:"column:option_3;type:text;not null" json:"option_3"`
	Option4       string    `gorm:"column:option_4;type:text;not null" json:"option_4"`
	CorrectAnswer string    `gorm:"type:text;not null" json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "mcq_test_questions"
}

// Options возвращает варианты ответа в порядке их нумерации
func (q *Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// IsCorrect проверяет, совпадает ли ответ с правильным
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
