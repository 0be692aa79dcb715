package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestTest_IsAvailableAt_NoWindow(t *testing.T) {
	// Arrange: окно не задано - тест доступен всегда
	test := &Test{ID: 1, TestName: "Go Basics"}

	// Act & Assert
	assert.False(t, test.HasValidityWindow())
	assert.True(t, test.IsAvailableAt(time.Now()))
}

func TestTest_IsAvailableAt_WithinWindow(t *testing.T) {
	// Arrange
	test := &Test{
		FromDate: datePtr(2026, 9, 1),
		ToDate:   datePtr(2026, 9, 30),
	}

	// Act & Assert
	assert.True(t, test.HasValidityWindow())
	assert.True(t, test.IsAvailableAt(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, test.IsAvailableAt(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)), "До начала окна тест недоступен")
	assert.False(t, test.IsAvailableAt(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)), "После конца окна тест недоступен")
}

func TestTest_IsAvailableAt_OpenEndedWindow(t *testing.T) {
	// Arrange: задана только нижняя граница
	test := &Test{FromDate: datePtr(2026, 9, 1)}

	// Act & Assert
	assert.True(t, test.IsAvailableAt(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), "Не заданная граница считается открытой")
	assert.False(t, test.IsAvailableAt(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
}
