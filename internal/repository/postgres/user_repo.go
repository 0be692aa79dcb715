package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/lms-api/internal/domain/entity"
)

// UserRepo реализует repository.UserRepository.
// Таблица users принадлежит внешней подсистеме аутентификации,
// здесь выполняется только чтение.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый read-only репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ListActiveStudents возвращает активных пользователей с ролью студента
func (r *UserRepo) ListActiveStudents() ([]entity.UserRef, error) {
	var users []entity.UserRef
	err := r.db.
		Select("id", "username", "company_id", "role_id", "isactive").
		Where("role_id = ? AND isactive = ?", entity.RoleStudent, true).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
