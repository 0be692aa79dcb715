package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/lms-api/internal/domain/entity"
	"github.com/yourusername/lms-api/internal/middleware"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
	"github.com/yourusername/lms-api/internal/service"
)

// ============================================================================
// Моки репозиториев для сборки настоящего TestService
// ============================================================================

type mockTestRepo struct {
	mock.Mock
}

func (m *mockTestRepo) Create(test *entity.Test) error {
	args := m.Called(test)
	return args.Error(0)
}

func (m *mockTestRepo) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *mockTestRepo) GetByID(id uint) (*entity.Test, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

func (m *mockTestRepo) List() ([]entity.Test, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Test), args.Error(1)
}

func (m *mockTestRepo) UpdateFields(id uint, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

type mockQuestionRepo struct {
	mock.Mock
}

func (m *mockQuestionRepo) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *mockQuestionRepo) GetByTestID(testID uint) ([]entity.Question, error) {
	args := m.Called(testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) CountByTestID(testID uint) (int64, error) {
	args := m.Called(testID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCacheRepo struct {
	mock.Mock
}

func (m *mockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *mockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *mockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newQuietCache() *mockCacheRepo {
	cache := new(mockCacheRepo)
	cache.On("GetJSON", mock.Anything, mock.Anything).Return(apperrors.ErrNotFound).Maybe()
	cache.On("SetJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.On("Delete", mock.Anything).Return(nil).Maybe()
	return cache
}

// setupRouter собирает тестовый роутер с настоящим сервисом над моками
func setupRouter(t *testing.T, testRepo *mockTestRepo, questionRepo *mockQuestionRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewTestService(testRepo, questionRepo, newQuietCache())
	h := NewTestHandler(svc, t.TempDir())

	router := gin.New()
	tests := router.Group("/test-master")
	{
		tests.POST("", h.CreateTest)
		tests.GET("", h.ListTests)

		withID := tests.Group("/:test_id")
		withID.Use(middleware.ExtractUintParam("test_id", "testID"))
		{
			withID.PUT("", h.UpdateTest)
			withID.GET("", h.GetQuestions)
		}
	}
	return router
}

// multipartBody собирает multipart-форму с полями теста и CSV-файлом
func multipartBody(t *testing.T, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("training_id", "3"))
	require.NoError(t, writer.WriteField("test_name", "Go Basics"))
	require.NoError(t, writer.WriteField("duration", "30"))

	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileContent))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// ============================================================================
// Тесты создания теста
// ============================================================================

func TestTestHandler_CreateTest_MultipartCSV(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	questionRepo := new(mockQuestionRepo)

	testRepo.On("ExistsByName", "Go Basics").Return(false, nil)
	testRepo.On("Create", mock.AnythingOfType("*entity.Test")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Test).ID = 7
	}).Return(nil)
	questionRepo.On("CreateBatch", mock.MatchedBy(func(rows []entity.Question) bool {
		return len(rows) == 2
	})).Return(nil)

	router := setupRouter(t, testRepo, questionRepo)

	csv := "question_text,option_1,option_2,option_3,option_4,correct_answer\n" +
		"Вопрос 1,A,B,C,D,A\n" +
		"Вопрос 2,A,B,C,D,B\n" +
		"Вопрос 3,A,,C,D,C\n"
	body, contentType := multipartBody(t, "bank.csv", csv)

	req := httptest.NewRequest(http.MethodPost, "/test-master", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test and questions created successfully", resp["message"])
	assert.EqualValues(t, 7, resp["test_id"])
	assert.EqualValues(t, 2, resp["questions_added"])
	assert.EqualValues(t, 1, resp["questions_skipped"])
	testRepo.AssertExpectations(t)
	questionRepo.AssertExpectations(t)
}

func TestTestHandler_CreateTest_JSONInline(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	questionRepo := new(mockQuestionRepo)

	testRepo.On("ExistsByName", "Inline Test").Return(false, nil)
	testRepo.On("Create", mock.AnythingOfType("*entity.Test")).Return(nil)
	questionRepo.On("CreateBatch", mock.Anything).Return(nil)

	router := setupRouter(t, testRepo, questionRepo)

	payload := `{
		"training_id": 3,
		"test_name": "Inline Test",
		"duration": 30,
		"questions": [
			{"question_text": "В1", "option_1": "A", "option_2": "B", "option_3": "C", "option_4": "D", "correct_answer": "A"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/test-master", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestTestHandler_CreateTest_DuplicateName(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	testRepo.On("ExistsByName", "Go Basics").Return(true, nil)

	router := setupRouter(t, testRepo, new(mockQuestionRepo))

	body, contentType := multipartBody(t, "bank.csv", "question_text\n")
	req := httptest.NewRequest(http.MethodPost, "/test-master", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "duplicate_name", resp["kind"])
	testRepo.AssertNotCalled(t, "Create")
}

func TestTestHandler_CreateTest_IncompleteInline(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	testRepo.On("ExistsByName", "Inline Test").Return(false, nil)

	router := setupRouter(t, testRepo, new(mockQuestionRepo))

	payload := `{
		"training_id": 3,
		"test_name": "Inline Test",
		"duration": 30,
		"questions": [
			{"question_text": "В1", "option_1": "A", "option_2": "B", "option_3": "C", "option_4": "D"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/test-master", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert: весь вызов отклонен, тест не создан
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "incomplete_inline_record", resp["kind"])
	testRepo.AssertNotCalled(t, "Create")
}

func TestTestHandler_CreateTest_NoInput(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	testRepo.On("ExistsByName", "Go Basics").Return(false, nil)

	router := setupRouter(t, testRepo, new(mockQuestionRepo))

	body, contentType := multipartBody(t, "", "")
	req := httptest.NewRequest(http.MethodPost, "/test-master", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no_input_provided", resp["kind"])
}

// ============================================================================
// Тесты обновления и чтения
// ============================================================================

func TestTestHandler_UpdateTest_NoFields(t *testing.T) {
	// Arrange
	router := setupRouter(t, new(mockTestRepo), new(mockQuestionRepo))

	req := httptest.NewRequest(http.MethodPut, "/test-master/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no_fields_provided", resp["kind"])
}

func TestTestHandler_UpdateTest_DatesParsed(t *testing.T) {
	// Arrange
	testRepo := new(mockTestRepo)
	testRepo.On("UpdateFields", uint(1), mock.MatchedBy(func(updates map[string]interface{}) bool {
		from, ok := updates["from_date"].(time.Time)
		return ok && from.Format("2006-01-02") == "2026-09-01"
	})).Return(nil)

	router := setupRouter(t, testRepo, new(mockQuestionRepo))

	req := httptest.NewRequest(http.MethodPut, "/test-master/1",
		strings.NewReader(`{"from_date": "2026-09-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testRepo.AssertExpectations(t)
}

func TestTestHandler_GetQuestions_EmptyIs404(t *testing.T) {
	// Arrange
	questionRepo := new(mockQuestionRepo)
	questionRepo.On("GetByTestID", uint(5)).Return([]entity.Question{}, nil)

	router := setupRouter(t, new(mockTestRepo), questionRepo)

	req := httptest.NewRequest(http.MethodGet, "/test-master/5", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestHandler_GetQuestions_InvalidID(t *testing.T) {
	// Arrange
	router := setupRouter(t, new(mockTestRepo), new(mockQuestionRepo))

	req := httptest.NewRequest(http.MethodGet, "/test-master/abc", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
