package repository

// ScoreRow - строка отчета: субъект (студент или тест) и суммарный балл
type ScoreRow struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	TotalScore int    `json:"total_score"`
}

// ReportRepository определяет агрегирующие запросы для отчетов по баллам
type ReportRepository interface {
	// CourseScores возвращает студентов курса с суммой баллов, по убыванию
	CourseScores(courseID uint) ([]ScoreRow, error)
	// TestScores возвращает студентов с баллами за конкретный тест
	TestScores(testID uint) ([]ScoreRow, error)
	// StudentScores возвращает тесты студента с его баллами
	StudentScores(studentID uint) ([]ScoreRow, error)
}
