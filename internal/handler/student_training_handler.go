package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
	"github.com/yourusername/lms-api/internal/service"
)

// StudentTrainingHandler обрабатывает запросы привязки студентов к программам
type StudentTrainingHandler struct {
	trainingService *service.StudentTrainingService
}

// NewStudentTrainingHandler создает новый обработчик привязок
func NewStudentTrainingHandler(trainingService *service.StudentTrainingService) *StudentTrainingHandler {
	return &StudentTrainingHandler{trainingService: trainingService}
}

// MappingRequest - запрос на изменение привязки студентов к программе
type MappingRequest struct {
	TrainingID uint   `json:"training_id"`
	StudentIDs []uint `json:"student_ids"`
	UnmapIDs   []uint `json:"unmap_student_ids"`
}

// ApplyMapping применяет изменения привязки
// POST /student-trainings
func (h *StudentTrainingHandler) ApplyMapping(c *gin.Context) {
	var req MappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.trainingService.ApplyMapping(req.TrainingID, req.StudentIDs, req.UnmapIDs); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student training mapping updated successfully"})
}

// MappingStatus возвращает пользователей компании с отметкой привязки
// GET /student-trainings/:company_id/:training_id
func (h *StudentTrainingHandler) MappingStatus(c *gin.Context) {
	companyID := c.MustGet("companyID").(uint)
	trainingID := c.MustGet("trainingID").(uint)

	rows, err := h.trainingService.MappingStatus(companyID, trainingID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StudentTrainingHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No users found for company"})
	default:
		log.Printf("[StudentTrainingHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
