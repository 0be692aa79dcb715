package service

import (
	"fmt"
	"iter"
	"log"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
	"github.com/yourusername/lms-api/internal/ingest"
)

// BulkPersister превращает поток кандидатов в строки вопросов и пишет их
// одной пакетной вставкой. Неполные кандидаты отбрасываются здесь еще раз,
// независимо от источника: файловые экстракторы уже фильтруют строки, но
// inline-источник построчной фильтрации не делает, поэтому второй проход
// единый для всех.
type BulkPersister struct {
	questionRepo repository.QuestionRepository
}

// NewBulkPersister создает персистер вопросов
func NewBulkPersister(questionRepo repository.QuestionRepository) *BulkPersister {
	return &BulkPersister{questionRepo: questionRepo}
}

// PersistResult - итог пакетной записи
type PersistResult struct {
	Inserted int // Сколько вопросов записано
	Skipped  int // Сколько кандидатов отброшено фильтром
}

// Persist привязывает кандидатов к тесту и программе обучения, фильтрует
// неполных и выполняет одну пакетную вставку выживших.
// Возвращает ErrNoValidQuestions, если после фильтрации не осталось строк.
func (p *BulkPersister) Persist(testID, trainingID uint, records iter.Seq2[ingest.QuestionRecord, error]) (*PersistResult, error) {
	var rows []entity.Question
	skipped := 0

	for rec, err := range records {
		if err != nil {
			return nil, fmt.Errorf("extract candidates: %w", err)
		}
		if !rec.Complete() {
			skipped++
			continue
		}
		rows = append(rows, entity.Question{
			TestID:        testID,
			TrainingID:    trainingID,
			QuestionText:  rec.QuestionText,
			Option1:       rec.Option1,
			Option2:       rec.Option2,
			Option3:       rec.Option3,
			Option4:       rec.Option4,
			CorrectAnswer: rec.CorrectAnswer,
		})
	}

	if len(rows) == 0 {
		return nil, ErrNoValidQuestions
	}

	if skipped > 0 {
		log.Printf("[BulkPersister] Отфильтровано %d неполных вопросов для теста #%d", skipped, testID)
	}

	if err := p.questionRepo.CreateBatch(rows); err != nil {
		return nil, fmt.Errorf("failed to create questions: %w", err)
	}

	return &PersistResult{Inserted: len(rows), Skipped: skipped}, nil
}
