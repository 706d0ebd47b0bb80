package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// DashboardHandler handles the aggregate views
type DashboardHandler struct {
	dashboard usecaseport.DashboardUseCase
	logger    coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboard usecaseport.DashboardUseCase, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// Summary handles GET /api/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.dashboard.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "dashboard summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(summary))
}

// Trend handles GET /api/dashboard/trend?months=N
func (h *DashboardHandler) Trend(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	months := entity.TrendMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.logger, "monthly trend", domainerr.NewValidationError("months", "must be a whole number"))
			return
		}
		months = n
	}

	trend, err := h.dashboard.MonthlyTrend(c.Request.Context(), userID, months)
	if err != nil {
		respondError(c, h.logger, "monthly trend", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTrendResponse(trend))
}

// Categories handles GET /api/dashboard/categories
func (h *DashboardHandler) Categories(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	breakdown, err := h.dashboard.CategoryBreakdown(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "category breakdown", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryBreakdownResponse(breakdown))
}

// MonthlySummary handles GET /api/dashboard/summary
func (h *DashboardHandler) MonthlySummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.dashboard.MonthlySummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "monthly summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMonthlySummaryResponse(summary))
}
