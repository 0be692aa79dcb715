package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
)

// StudentTrainingRepo реализует repository.StudentTrainingRepository
type StudentTrainingRepo struct {
	db *gorm.DB
}

// NewStudentTrainingRepo создает новый репозиторий привязок студентов
func NewStudentTrainingRepo(db *gorm.DB) *StudentTrainingRepo {
	return &StudentTrainingRepo{db: db}
}

// MapStudents привязывает студентов к программе одной пакетной вставкой
func (r *StudentTrainingRepo) MapStudents(trainingID uint, studentIDs []uint) error {
	if len(studentIDs) == 0 {
		return nil
	}
	mappings := make([]entity.StudentTraining, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		mappings = append(mappings, entity.StudentTraining{
			StudentID:  studentID,
			TrainingID: trainingID,
		})
	}
	return r.db.Create(&mappings).Error
}

// UnmapStudents снимает привязку перечисленных студентов
func (r *StudentTrainingRepo) UnmapStudents(trainingID uint, studentIDs []uint) error {
	if len(studentIDs) == 0 {
		return nil
	}
	return r.db.
		Where("training_id = ? AND student_id IN ?", trainingID, studentIDs).
		Delete(&entity.StudentTraining{}).Error
}

// MappingStatus возвращает всех пользователей компании с отметкой привязки
func (r *StudentTrainingRepo) MappingStatus(companyID, trainingID uint) ([]repository.MappingStatusRow, error) {
	var rows []repository.MappingStatusRow
	err := r.db.Raw(`
		SELECT
			u.id AS user_id,
			u.username,
			u.company_id,
			st.training_id,
			CASE WHEN st.training_id IS NOT NULL THEN 'Check' ELSE 'Uncheck' END AS has_training_record
		FROM users u
		LEFT JOIN student_trainings st
			ON u.id = st.student_id AND st.training_id = ?
		WHERE u.company_id = ?`,
		trainingID, companyID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
