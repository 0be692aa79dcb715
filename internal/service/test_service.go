package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/domain/repository"
	"github.com/yourusername/lms-api/internal/ingest"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
)

const (
	testListCacheKey = "test_master:list"
	testListCacheTTL = 30 * time.Second
)

// TestService предоставляет методы каталога тестов и конвейер загрузки
// банка вопросов
type TestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
	persister    *BulkPersister
}

// NewTestService создает новый сервис тестов
func NewTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
) *TestService {
	return &TestService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
		persister:    NewBulkPersister(questionRepo),
	}
}

// IngestInput - запрос на создание теста с наполнением банка вопросов.
// Файл и inline-массив могут быть переданы одновременно: приоритет у файла.
type IngestInput struct {
	TrainingID uint
	TestName   string
	Duration   int
	Inline     []ingest.QuestionRecord
	File       *ingest.FileUpload
}

// missingFields возвращает имена отсутствующих обязательных полей
func (in IngestInput) missingFields() []string {
	var missing []string
	if in.TrainingID == 0 {
		missing = append(missing, "training_id")
	}
	if in.TestName == "" {
		missing = append(missing, "test_name")
	}
	if in.Duration == 0 {
		missing = append(missing, "duration")
	}
	return missing
}

// IngestResult - итог создания теста
type IngestResult struct {
	TestID   uint
	Inserted int
	Skipped  int
}

// CreateTestWithQuestions создает тест и наполняет его банк вопросов из
// одного источника. Порядок проверок фиксирован: обязательные поля,
// занятость имени, выбор источника (включая жадную валидацию inline-массива) -
// все до вставки теста. Создание теста и вставка вопросов не объединены в
// транзакцию: при пустом итоге фильтрации тест остается в каталоге без
// вопросов, и вызывающая сторона наблюдает это как отдельный исход.
func (s *TestService) CreateTestWithQuestions(in IngestInput) (*IngestResult, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	// Предварительная проверка имени: быстрый отказ до какой-либо работы
	// по извлечению. Окно между проверкой и вставкой закрывает уникальный
	// индекс в хранилище.
	exists, err := s.testRepo.ExistsByName(in.TestName)
	if err != nil {
		return nil, fmt.Errorf("check test name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", repository.ErrDuplicateTestName, in.TestName)
	}

	extractor, err := ingest.Select(in.File, in.Inline)
	if err != nil {
		return nil, err
	}

	test := &entity.Test{
		TrainingID: in.TrainingID,
		TestName:   in.TestName,
		Duration:   in.Duration,
	}
	if err := s.testRepo.Create(test); err != nil {
		return nil, err
	}
	s.invalidateListCache()

	persisted, err := s.persister.Persist(test.ID, in.TrainingID, extractor.Records())
	if err != nil {
		// Тест уже в каталоге; вопросы не записаны. Откат не выполняется.
		log.Printf("[TestService] Тест #%d создан, но вопросы не записаны: %v", test.ID, err)
		return nil, err
	}

	log.Printf("[TestService] Тест #%d создан, вопросов записано: %d, отброшено: %d",
		test.ID, persisted.Inserted, persisted.Skipped)

	return &IngestResult{
		TestID:   test.ID,
		Inserted: persisted.Inserted,
		Skipped:  persisted.Skipped,
	}, nil
}

// TestUpdate - частичное обновление метаданных теста.
// Обновляются только не-nil поля.
type TestUpdate struct {
	TrainingID *uint
	TestName   *string
	FromDate   *time.Time
	ToDate     *time.Time
	Duration   *int
}

// UpdateTest обновляет только переданные поля теста.
// Пустой набор полей - ErrNoFieldsProvided, неизвестный ID - ErrNotFound.
func (s *TestService) UpdateTest(id uint, upd TestUpdate) error {
	updates := map[string]interface{}{}
	if upd.TrainingID != nil {
		updates["training_id"] = *upd.TrainingID
	}
	if upd.TestName != nil {
		updates["test_name"] = *upd.TestName
	}
	if upd.FromDate != nil {
		updates["from_date"] = *upd.FromDate
	}
	if upd.ToDate != nil {
		updates["to_date"] = *upd.ToDate
	}
	if upd.Duration != nil {
		updates["duration"] = *upd.Duration
	}

	if len(updates) == 0 {
		return ErrNoFieldsProvided
	}

	if err := s.testRepo.UpdateFields(id, updates); err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// ListTests возвращает все тесты каталога. Список кешируется с коротким
// TTL; промах или недоступность кеша прозрачно уходят в хранилище.
func (s *TestService) ListTests() ([]entity.Test, error) {
	var cached []entity.Test
	if err := s.cacheRepo.GetJSON(testListCacheKey, &cached); err == nil {
		return cached, nil
	}

	tests, err := s.testRepo.List()
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.SetJSON(testListCacheKey, tests, testListCacheTTL); err != nil {
		log.Printf("[TestService] Не удалось закешировать список тестов: %v", err)
	}
	return tests, nil
}

// QuestionsForTest возвращает сохраненные вопросы теста.
// Пустой результат отдается как ErrNotFound: на этом слое тест без
// вопросов неотличим от несуществующего ID (принятая неоднозначность).
func (s *TestService) QuestionsForTest(testID uint) ([]entity.Question, error) {
	questions, err := s.questionRepo.GetByTestID(testID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return questions, nil
}

// invalidateListCache сбрасывает кеш списка после любой записи в каталог
func (s *TestService) invalidateListCache() {
	if err := s.cacheRepo.Delete(testListCacheKey); err != nil {
		log.Printf("[TestService] Не удалось сбросить кеш списка тестов: %v", err)
	}
}
