package repository

// MappingStatusRow - пользователь компании с признаком привязки к программе обучения
type MappingStatusRow struct {
	UserID            uint   `json:"user_id"`
	Username          string `json:"username"`
	CompanyID         uint   `json:"company_id"`
	TrainingID        *uint  `json:"training_id"`
	HasTrainingRecord string `json:"has_training_record"` // "Check" / "Uncheck"
}

// StudentTrainingRepository определяет методы привязки студентов к программам обучения
type StudentTrainingRepository interface {
	// MapStudents привязывает студентов к программе одной пакетной вставкой
	MapStudents(trainingID uint, studentIDs []uint) error
	// UnmapStudents снимает привязку перечисленных студентов
	UnmapStudents(trainingID uint, studentIDs []uint) error
	// MappingStatus возвращает всех пользователей компании с отметкой,
	// привязан ли каждый к указанной программе
	MappingStatus(companyID, trainingID uint) ([]MappingStatusRow, error)
}
