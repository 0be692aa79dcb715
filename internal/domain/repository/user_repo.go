package repository

import (
	"github.com/yourusername/lms-api/internal/domain/entity"
)

// UserRepository - read-only доступ к внешней таблице users
type UserRepository interface {
	// ListActiveStudents возвращает активных пользователей с ролью студента
	ListActiveStudents() ([]entity.UserRef, error)
}
