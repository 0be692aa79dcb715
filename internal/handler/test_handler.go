package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/lms-api/internal/domain/repository"
	"github.com/yourusername/lms-api/internal/handler/dto"
	"github.com/yourusername/lms-api/internal/ingest"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
	"github.com/yourusername/lms-api/internal/service"
)

// TestHandler обрабатывает запросы каталога тестов
type TestHandler struct {
	testService *service.TestService
	uploadsDir  string
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(testService *service.TestService, uploadsDir string) *TestHandler {
	return &TestHandler{
		testService: testService,
		uploadsDir:  uploadsDir,
	}
}

// CreateTest обрабатывает создание теста с наполнением банка вопросов
// POST /test-master
//
// Принимает либо multipart/form-data (поля training_id, test_name, duration
// и файл file), либо application/json с inline-массивом questions.
func (h *TestHandler) CreateTest(c *gin.Context) {
	var input service.IngestInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in, err := h.parseMultipart(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input = *in
	} else {
		var req dto.CreateTestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		input = service.IngestInput{
			TrainingID: req.TrainingID,
			TestName:   req.TestName,
			Duration:   req.Duration,
			Inline:     req.Questions,
		}
	}

	result, err := h.testService.CreateTestWithQuestions(input)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Test and questions created successfully",
		"test_id":           result.TestID,
		"questions_added":   result.Inserted,
		"questions_skipped": result.Skipped,
	})
}

// parseMultipart извлекает поля формы и стейджит прикрепленный файл.
// Staged-файл удаляется до возврата ответа: blob потребляется один раз.
func (h *TestHandler) parseMultipart(c *gin.Context) (*service.IngestInput, error) {
	trainingID, _ := strconv.ParseUint(c.PostForm("training_id"), 10, 32)
	duration, _ := strconv.Atoi(c.PostForm("duration"))

	input := &service.IngestInput{
		TrainingID: uint(trainingID),
		TestName:   c.PostForm("test_name"),
		Duration:   duration,
	}

	// Inline-массив может прийти и внутри multipart-формы
	if raw := c.PostForm("questions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Inline); err != nil {
			return nil, errors.New("Invalid questions format: " + err.Error())
		}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		// Файл не прикреплен - источником будет inline-массив (если есть)
		return input, nil
	}

	staged, err := ingest.StageUpload(h.uploadsDir, fh)
	if err != nil {
		return nil, err
	}
	defer staged.Remove()

	content, err := staged.Read()
	if err != nil {
		return nil, err
	}
	input.File = &ingest.FileUpload{Name: staged.OriginalName, Content: content}
	return input, nil
}

// ListTests возвращает все тесты каталога
// GET /test-master
func (h *TestHandler) ListTests(c *gin.Context) {
	tests, err := h.testService.ListTests()
	if err != nil {
		h.handleTestError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTestListResponse(tests))
}

// UpdateTest обновляет только переданные поля теста
// PUT /test-master/:test_id
func (h *TestHandler) UpdateTest(c *gin.Context) {
	testID := c.MustGet("testID").(uint)

	var req dto.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	upd, err := req.ToUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.testService.UpdateTest(testID, upd); err != nil {
		h.handleTestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test updated successfully"})
}

// GetQuestions возвращает вопросы теста
// GET /test-master/:test_id
func (h *TestHandler) GetQuestions(c *gin.Context) {
	testID := c.MustGet("testID").(uint)

	questions, err := h.testService.QuestionsForTest(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions))
}

// handleTestError преобразует ошибки сервисного слоя в HTTP-ответы.
// Каждая категория отказа получает свой машиночитаемый kind.
func (h *TestHandler) handleTestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "missing_fields"})
	case errors.Is(err, repository.ErrDuplicateTestName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "duplicate_name"})
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "unsupported_format"})
	case errors.Is(err, ingest.ErrNoInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "no_input_provided"})
	case errors.Is(err, ingest.ErrIncompleteRecord):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "incomplete_inline_record"})
	case errors.Is(err, service.ErrNoValidQuestions):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "no_valid_questions"})
	case errors.Is(err, service.ErrNoFieldsProvided):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "no_fields_provided"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("[TestHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
