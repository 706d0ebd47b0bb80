package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgets usecaseport.BudgetUseCase
	logger  coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgets usecaseport.BudgetUseCase, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, logger: logger}
}

// List handles GET /api/budgets
func (h *BudgetHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	budgets, err := h.budgets.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list budgets", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetList(budgets))
}

// Upsert handles POST /api/budgets. Setting a limit for an existing category
// replaces it and starts spending from zero.
func (h *BudgetHandler) Upsert(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	id, err := h.budgets.Upsert(c.Request.Context(), userID, usecaseport.UpsertBudgetRequest{
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
	})
	if err != nil {
		respondError(c, h.logger, "set budget", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Budget set successfully",
	})
}
