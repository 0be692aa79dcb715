package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
)

// ReportRepo реализует repository.ReportRepository.
// Запросы читают таблицы внешних подсистем (users, courses, training_details,
// test_scores) и поэтому написаны сырым SQL, а не через модели.
type ReportRepo struct {
	db *gorm.DB
}

// NewReportRepo создает новый репозиторий отчетов
func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// CourseScores возвращает студентов курса с суммой баллов, по убыванию
func (r *ReportRepo) CourseScores(courseID uint) ([]repository.ScoreRow, error) {
	var rows []repository.ScoreRow
	err := r.db.Raw(`
		SELECT
			u.id,
			u.username AS name,
			COALESCE(SUM(ts.score), 0) AS total_score
		FROM users u
		INNER JOIN student_trainings st ON u.id = st.student_id
		INNER JOIN training_details td ON st.training_id = td.id
		INNER JOIN courses c ON td.course_id = c.id
		LEFT JOIN test_scores ts ON u.id = ts.student_id
		WHERE c.id = ? AND u.role_id = ?
		GROUP BY u.id, u.username
		ORDER BY total_score DESC`,
		courseID, entity.RoleStudent,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TestScores возвращает студентов с баллами за конкретный тест
func (r *ReportRepo) TestScores(testID uint) ([]repository.ScoreRow, error) {
	var rows []repository.ScoreRow
	err := r.db.Raw(`
		SELECT
			u.id,
			u.username AS name,
			COALESCE(ts.score, 0) AS total_score
		FROM users u
		INNER JOIN student_trainings st ON u.id = st.student_id
		INNER JOIN training_details td ON st.training_id = td.id
		INNER JOIN test_master tm ON td.id = tm.training_id
		LEFT JOIN test_scores ts ON u.id = ts.student_id AND tm.test_id = ts.test_id
		WHERE tm.test_id = ? AND u.role_id = ?
		ORDER BY total_score DESC`,
		testID, entity.RoleStudent,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StudentScores возвращает тесты студента с его баллами
func (r *ReportRepo) StudentScores(studentID uint) ([]repository.ScoreRow, error) {
	var rows []repository.ScoreRow
	err := r.db.Raw(`
		SELECT
			tm.test_id AS id,
			tm.test_name AS name,
			COALESCE(ts.score, 0) AS total_score
		FROM test_master tm
		INNER JOIN training_details td ON tm.training_id = td.id
		INNER JOIN student_trainings st ON td.id = st.training_id
		LEFT JOIN test_scores ts ON tm.test_id = ts.test_id AND st.student_id = ts.student_id
		WHERE st.student_id = ?
		ORDER BY tm.test_name`,
		studentID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
