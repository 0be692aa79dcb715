package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// TestRepo реализует repository.TestRepository
type TestRepo struct {
	db *gorm.DB
}

// NewTestRepo создает новый репозиторий каталога тестов
func NewTestRepo(db *gorm.DB) *TestRepo {
	return &TestRepo{db: db}
}

// Create сохраняет новый тест. Уникальный индекс по test_name страхует от
// гонки между предварительной проверкой имени и вставкой: нарушение 23505
// возвращается как ErrDuplicateTestName, а не как серверная ошибка.
func (r *TestRepo) Create(test *entity.Test) error {
	if err := r.db.Create(test).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", repository.ErrDuplicateTestName, test.TestName)
		}
		return err
	}
	return nil
}

// ExistsByName проверяет, занято ли имя теста
func (r *TestRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Test{}).
		Where("test_name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID возвращает тест по ID
func (r *TestRepo) GetByID(id uint) (*entity.Test, error) {
	var test entity.Test
	err := r.db.First(&test, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}

// List возвращает все тесты без фильтрации
func (r *TestRepo) List() ([]entity.Test, error) {
	var tests []entity.Test
	err := r.db.Order("test_id").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

// UpdateFields точечно обновляет только переданные колонки (без full Save)
func (r *TestRepo) UpdateFields(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&entity.Test{}).
		Where("test_id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return repository.ErrDuplicateTestName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
