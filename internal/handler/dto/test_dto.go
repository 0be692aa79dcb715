package dto

import (
	"fmt"
	"time"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/ingest"
	"github.com/yourusername/lms-api/internal/service"
)

// CreateTestRequest - JSON-тело запроса на создание теста с inline-массивом
// вопросов
type CreateTestRequest struct {
	TrainingID uint                    `json:"training_id"`
	TestName   string                  `json:"test_name"`
	Duration   int                     `json:"duration"`
	Questions  []ingest.QuestionRecord `json:"questions"`
}

// UpdateTestRequest - тело частичного обновления теста.
// Поля-указатели отличают "не передано" от нулевого значения.
type UpdateTestRequest struct {
	TrainingID *uint   `json:"training_id"`
	TestName   *string `json:"test_name"`
	FromDate   *string `json:"from_date"`
	ToDate     *string `json:"to_date"`
	Duration   *int    `json:"duration"`
}

// ToUpdate преобразует запрос в обновление сервисного слоя, разбирая даты
func (r UpdateTestRequest) ToUpdate() (service.TestUpdate, error) {
	upd := service.TestUpdate{
		TrainingID: r.TrainingID,
		TestName:   r.TestName,
		Duration:   r.Duration,
	}
	if r.FromDate != nil {
		t, err := parseDate(*r.FromDate)
		if err != nil {
			return upd, fmt.Errorf("invalid from_date: %w", err)
		}
		upd.FromDate = t
	}
	if r.ToDate != nil {
		t, err := parseDate(*r.ToDate)
		if err != nil {
			return upd, fmt.Errorf("invalid to_date: %w", err)
		}
		upd.ToDate = t
	}
	return upd, nil
}

// TestResponse представляет тест каталога в ответе API
type TestResponse struct {
	TestID     uint   `json:"test_id"`
	TrainingID uint   `json:"training_id"`
	TestName   string `json:"test_name"`
	FromDate   string `json:"from_date,omitempty"`
	ToDate     string `json:"to_date,omitempty"`
	Duration   int    `json:"duration"`
}

// NewTestResponse создает DTO из сущности теста
func NewTestResponse(t *entity.Test) TestResponse {
	resp := TestResponse{
		TestID:     t.ID,
		TrainingID: t.TrainingID,
		TestName:   t.TestName,
		Duration:   t.Duration,
	}
	if t.FromDate != nil {
		resp.FromDate = t.FromDate.Format("2006-01-02")
	}
	if t.ToDate != nil {
		resp.ToDate = t.ToDate.Format("2006-01-02")
	}
	return resp
}

// NewTestListResponse создает список DTO из сущностей
func NewTestListResponse(tests []entity.Test) []TestResponse {
	result := make([]TestResponse, 0, len(tests))
	for i := range tests {
		result = append(result, NewTestResponse(&tests[i]))
	}
	return result
}

// QuestionResponse представляет вопрос теста в ответе API
type QuestionResponse struct {
	ID            uint   `json:"id"`
	TestID        uint   `json:"test_id"`
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer string `json:"correct_answer"`
}

// NewQuestionResponse создает DTO из сущности вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		TestID:        q.TestID,
		QuestionText:  q.QuestionText,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
		CorrectAnswer: q.CorrectAnswer,
	}
}

// NewQuestionListResponse создает список DTO из сущностей
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// parseDate разбирает дату формата YYYY-MM-DD, пустая строка дает nil
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
