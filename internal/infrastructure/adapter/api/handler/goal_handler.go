package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goals        usecaseport.GoalUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGoalHandler creates a new goal handler instance
func NewGoalHandler(goals usecaseport.GoalUseCase, timeProvider coreport.TimeProvider, logger coreport.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, timeProvider: timeProvider, logger: logger}
}

// List handles GET /api/goals
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	goals, err := h.goals.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list goals", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGoalList(goals, h.timeProvider.Now()))
}

// Create handles POST /api/goals
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	id, err := h.goals.Create(c.Request.Context(), userID, toGoalRequest(req))
	if err != nil {
		respondError(c, h.logger, "create goal", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Goal created successfully",
	})
}

// Update handles PUT /api/goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	goalID, err := pathID(c, "id", domainerr.ErrGoalNotFound)
	if err != nil {
		respondError(c, h.logger, "update goal", err)
		return
	}

	var req dto.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	if err := h.goals.Update(c.Request.Context(), userID, goalID, toGoalRequest(req)); err != nil {
		respondError(c, h.logger, "update goal", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal updated successfully"})
}

// AddProgress handles POST /api/goals/:id/progress
func (h *GoalHandler) AddProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	goalID, err := pathID(c, "id", domainerr.ErrGoalNotFound)
	if err != nil {
		respondError(c, h.logger, "add goal progress", err)
		return
	}

	var req dto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	goal, err := h.goals.AddProgress(c.Request.Context(), userID, goalID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "add goal progress", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGoalResponse(goal, h.timeProvider.Now()))
}

func toGoalRequest(req dto.GoalRequest) usecaseport.GoalRequest {
	return usecaseport.GoalRequest{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
	}
}
