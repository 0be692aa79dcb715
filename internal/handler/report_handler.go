package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/lms-api/internal/pkg/errors"
	"github.com/yourusername/lms-api/internal/service"
)

// ReportHandler обрабатывает запросы отчетов по баллам
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler создает новый обработчик отчетов
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportRequest - запрос отчета: тип субъекта и его ID
type ReportRequest struct {
	Type string `json:"type" binding:"required"`
	ID   uint   `json:"id" binding:"required"`
}

// Scores возвращает отчет по баллам
// POST /reports
func (h *ReportHandler) Scores(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rows, err := h.reportService.Scores(req.Type, req.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No scores found"})
	default:
		log.Printf("[ReportHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
