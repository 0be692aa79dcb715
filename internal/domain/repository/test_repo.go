package repository

import (
	"errors"

	"github.com/yourusername/lms-api/internal/domain/entity"
)

// ErrDuplicateTestName возвращается при попытке создать тест с уже занятым именем.
// Поднимается как предварительной проверкой в сервисе, так и уникальным индексом
// в хранилище (закрывает окно между check и insert при конкурентных запросах).
var ErrDuplicateTestName = errors.New("test name already exists")

// TestRepository определяет методы для работы с каталогом тестов
type TestRepository interface {
	// Create сохраняет новый тест. При нарушении уникальности имени
	// возвращает ErrDuplicateTestName.
	Create(test *entity.Test) error
	// ExistsByName проверяет, занято ли имя теста
	ExistsByName(name string) (bool, error)
	GetByID(id uint) (*entity.Test, error)
	List() ([]entity.Test, error)
	// UpdateFields обновляет только переданные колонки.
	// Возвращает apperrors.ErrNotFound, если тест не существует.
	UpdateFields(id uint, updates map[string]interface{}) error
}
