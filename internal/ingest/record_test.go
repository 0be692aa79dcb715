package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionRecord_Complete_AllFields(t *testing.T) {
	// Arrange
	record := QuestionRecord{
		QuestionText:  "Что выведет fmt.Println(1 + 1)?",
		Option1:       "1",
		Option2:       "2",
		Option3:       "11",
		Option4:       "ошибка компиляции",
		CorrectAnswer: "2",
	}

	// Act & Assert
	assert.True(t, record.Complete(), "Запись со всеми полями должна быть полной")
	assert.Empty(t, record.MissingFields())
}

func TestQuestionRecord_Complete_MissingField(t *testing.T) {
	// Arrange
	record := QuestionRecord{
		QuestionText:  "Вопрос",
		Option1:       "A",
		Option2:       "B",
		Option3:       "C",
		CorrectAnswer: "A",
	}

	// Act & Assert
	assert.False(t, record.Complete(), "Запись без option_4 не должна быть полной")
	assert.Equal(t, []string{FieldOption4}, record.MissingFields())
}

func TestQuestionRecord_Complete_WhitespaceCounts(t *testing.T) {
	// Arrange: поле из одних пробелов считается присутствующим
	record := QuestionRecord{
		QuestionText:  " ",
		Option1:       "A",
		Option2:       "B",
		Option3:       "C",
		Option4:       "D",
		CorrectAnswer: "A",
	}

	// Act & Assert
	assert.True(t, record.Complete(), "Пробельное значение не считается отсутствующим")
}

func TestQuestionRecord_MissingFields_Order(t *testing.T) {
	// Arrange
	record := QuestionRecord{Option2: "B", CorrectAnswer: "B"}

	// Act
	missing := record.MissingFields()

	// Assert: имена идут в каноническом порядке полей
	assert.Equal(t, []string{FieldQuestionText, FieldOption1, FieldOption3, FieldOption4}, missing)
}
