package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCorrect(t *testing.T) {
	// Arrange
	question := &Question{
		QuestionText:  "Какой тип у литерала 1.5 в Go?",
		Option1:       "int",
		Option2:       "float32",
		Option3:       "float64",
		Option4:       "complex128",
		CorrectAnswer: "float64",
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("float64"))
	assert.False(t, question.IsCorrect("float32"))
	assert.False(t, question.IsCorrect(""))
}

func TestQuestion_Options_Order(t *testing.T) {
	// Arrange
	question := &Question{Option1: "A", Option2: "B", Option3: "C", Option4: "D"}

	// Act & Assert
	assert.Equal(t, []string{"A", "B", "C", "D"}, question.Options())
}
