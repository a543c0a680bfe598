package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wekesa/dukapos-api/internal/application/service"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles the sales summary report
func (h *ReportHandler) Summary(c *gin.Context) {
	report, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", report)
}

// TopProducts handles the top selling products report
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	rows, err := h.reportService.TopProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", rows)
}

// Inventory handles the inventory coverage report
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.reportService.Inventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory report retrieved successfully", report)
}
