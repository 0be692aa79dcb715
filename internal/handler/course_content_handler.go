package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/lms-api/internal/domain/entity"
	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
	"github.com/yourusername/lms-api/internal/service"
)

// CourseContentHandler обрабатывает запросы учебного плана
type CourseContentHandler struct {
	contentService *service.CourseContentService
}

// NewCourseContentHandler создает новый обработчик учебного плана
func NewCourseContentHandler(contentService *service.CourseContentService) *CourseContentHandler {
	return &CourseContentHandler{contentService: contentService}
}

// CourseContentRequest - тело запроса на создание/обновление записи плана
type CourseContentRequest struct {
	Date       string `json:"date" binding:"required"`
	Day        string `json:"day"`
	DayNumber  int    `json:"day_number" binding:"required"`
	Skill      string `json:"skill"`
	Topic      string `json:"topic"`
	Assignment string `json:"assignment"`
	Assessment string `json:"assessment"`
	Project    string `json:"project"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

func (r CourseContentRequest) toEntity() (*entity.CourseContent, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return &entity.CourseContent{
		Date:       date,
		Day:        r.Day,
		DayNumber:  r.DayNumber,
		Skill:      r.Skill,
		Topic:      r.Topic,
		Assignment: r.Assignment,
		Assessment: r.Assessment,
		Project:    r.Project,
		Status:     r.Status,
		Notes:      r.Notes,
	}, nil
}

// CreateContent добавляет запись учебного плана
// POST /course-content
func (h *CourseContentHandler) CreateContent(c *gin.Context) {
	var req CourseContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	content, err := req.toEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.CreateContent(content); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

// ListContent возвращает весь учебный план
// GET /course-content
func (h *CourseContentHandler) ListContent(c *gin.Context) {
	content, err := h.contentService.ListContent()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// UpdateContent перезаписывает запись учебного плана
// PUT /course-content/:id
func (h *CourseContentHandler) UpdateContent(c *gin.Context) {
	id := c.MustGet("contentID").(uint)

	var req CourseContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	content, err := req.toEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content.ID = id

	if err := h.contentService.UpdateContent(content); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course content updated successfully"})
}

// DeleteContent удаляет запись учебного плана
// DELETE /course-content/:id
func (h *CourseContentHandler) DeleteContent(c *gin.Context) {
	id := c.MustGet("contentID").(uint)

	if err := h.contentService.DeleteContent(id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course content deleted successfully"})
}

func (h *CourseContentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course content not found"})
	default:
		log.Printf("[CourseContentHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
