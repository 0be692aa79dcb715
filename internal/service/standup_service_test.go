package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/lms-api/internal/domain/entity"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

// ============================================================================
// Моки для StandupService
// ============================================================================

// MockStandupNoteRepository реализует repository.StandupNoteRepository
type MockStandupNoteRepository struct {
	mock.Mock
}

func (m *MockStandupNoteRepository) Create(note *entity.StandupNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockStandupNoteRepository) GetByID(id uint) (*entity.StandupNote, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StandupNote), args.Error(1)
}

func (m *MockStandupNoteRepository) List() ([]entity.StandupNoteWithUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StandupNoteWithUser), args.Error(1)
}

func (m *MockStandupNoteRepository) ListBetween(start, end time.Time) ([]entity.StandupNote, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StandupNote), args.Error(1)
}

func (m *MockStandupNoteRepository) UpdateContent(id uint, yesterdayWork, todayPlan, blockers string) error {
	args := m.Called(id, yesterdayWork, todayPlan, blockers)
	return args.Error(0)
}

func (m *MockStandupNoteRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListActiveStudents() ([]entity.UserRef, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserRef), args.Error(1)
}

// ============================================================================
// Тесты недельной сводки
// ============================================================================

func TestStandupService_WeeklyOverview_GroupsNotesByDate(t *testing.T) {
	// Arrange
	mockNoteRepo := new(MockStandupNoteRepository)
	mockUserRepo := new(MockUserRepository)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	mockUserRepo.On("ListActiveStudents").Return([]entity.UserRef{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nil)

	mockNoteRepo.On("ListBetween", start, end).Return([]entity.StandupNote{
		{ID: 10, UserID: 1, StandupDate: start, TodayPlan: "миграции"},
		{ID: 11, UserID: 1, StandupDate: start.AddDate(0, 0, 1), TodayPlan: "репозиторий"},
	}, nil)

	svc := NewStandupService(mockNoteRepo, mockUserRepo)

	// Act
	rows, err := svc.WeeklyOverview(start, end)

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 2, "Каждый активный студент присутствует ровно один раз")

	assert.Equal(t, "alice", rows[0].Username)
	require.Len(t, rows[0].Notes, 2)
	assert.Equal(t, "миграции", rows[0].Notes["2026-08-24"].TodayPlan)
	assert.Equal(t, "репозиторий", rows[0].Notes["2026-08-25"].TodayPlan)

	// У bob заметок нет, но строка есть
	assert.Equal(t, "bob", rows[1].Username)
	assert.Empty(t, rows[1].Notes)
}

func TestStandupService_WeeklyOverview_EndBeforeStart(t *testing.T) {
	// Arrange
	svc := NewStandupService(new(MockStandupNoteRepository), new(MockUserRepository))

	start := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	// Act
	rows, err := svc.WeeklyOverview(start, end)

	// Assert
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStandupService_CreateNote_RequiresUserAndDate(t *testing.T) {
	// Arrange
	mockNoteRepo := new(MockStandupNoteRepository)
	svc := NewStandupService(mockNoteRepo, new(MockUserRepository))

	// Act
	err := svc.CreateNote(&entity.StandupNote{TodayPlan: "план без автора"})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockNoteRepo.AssertNotCalled(t, "Create")
}
