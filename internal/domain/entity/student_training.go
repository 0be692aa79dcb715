package entity

// StudentTraining связывает студента с программой обучения
type StudentTraining struct {
	StudentID  uint `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	TrainingID uint `gorm:"primaryKey;autoIncrement:false" json:"training_id"`
}

// TableName определяет имя таблицы для GORM
func (StudentTraining) TableName() string {
	return "student_trainings"
}
