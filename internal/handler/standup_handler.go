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

// StandupHandler обрабатывает запросы standup-заметок
type StandupHandler struct {
	standupService *service.StandupService
}

// NewStandupHandler создает новый обработчик standup-заметок
func NewStandupHandler(standupService *service.StandupService) *StandupHandler {
	return &StandupHandler{standupService: standupService}
}

// CreateNoteRequest - запрос на создание заметки.
// Автор берется из JWT-контекста, а не из тела запроса.
type CreateNoteRequest struct {
	StandupDate   string `json:"standup_date" binding:"required"`
	YesterdayWork string `json:"yesterday_work"`
	TodayPlan     string `json:"today_plan"`
	Blockers      string `json:"blockers"`
}

// CreateNote сохраняет заметку студента
// POST /standup-notes
func (h *StandupHandler) CreateNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.StandupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid standup_date, expected YYYY-MM-DD"})
		return
	}

	note := &entity.StandupNote{
		UserID:        userID.(uint),
		StandupDate:   date,
		YesterdayWork: req.YesterdayWork,
		TodayPlan:     req.TodayPlan,
		Blockers:      req.Blockers,
	}
	if err := h.standupService.CreateNote(note); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetNote возвращает заметку по ID
// GET /standup-notes/:id
func (h *StandupHandler) GetNote(c *gin.Context) {
	id := c.MustGet("noteID").(uint)

	note, err := h.standupService.GetNote(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListNotes возвращает все заметки с именами авторов
// GET /standup-notes
func (h *StandupHandler) ListNotes(c *gin.Context) {
	notes, err := h.standupService.ListNotes()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// UpdateNoteRequest - запрос на обновление текстовых полей заметки
type UpdateNoteRequest struct {
	YesterdayWork string `json:"yesterday_work"`
	TodayPlan     string `json:"today_plan"`
	Blockers      string `json:"blockers"`
}

// UpdateNote обновляет текстовые поля заметки
// PUT /standup-notes/:id
func (h *StandupHandler) UpdateNote(c *gin.Context) {
	id := c.MustGet("noteID").(uint)

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.standupService.UpdateNote(id, req.YesterdayWork, req.TodayPlan, req.Blockers); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// DeleteNote удаляет заметку
// DELETE /standup-notes/:id
func (h *StandupHandler) DeleteNote(c *gin.Context) {
	id := c.MustGet("noteID").(uint)

	if err := h.standupService.DeleteNote(id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

// WeeklyOverview возвращает админскую сводку заметок за период
// GET /standup-notes/weekly?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *StandupHandler) WeeklyOverview(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing end date, expected YYYY-MM-DD"})
		return
	}

	rows, err := h.standupService.WeeklyOverview(start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StandupHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	default:
		log.Printf("[StandupHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
