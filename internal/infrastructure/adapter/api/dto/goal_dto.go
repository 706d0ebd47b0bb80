package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// GoalRequest is the body of POST /api/goals and PUT /api/goals/:id
type GoalRequest struct {
	Name          string           `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      string           `json:"deadline"`
}

// ProgressRequest is the body of POST /api/goals/:id/progress
type ProgressRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// GoalResponse is one goal with its progress figures
type GoalResponse struct {
	ID              uint64   `json:"id"`
	UserID          uint64   `json:"user_id"`
	Name            string   `json:"name"`
	TargetAmount    float64  `json:"target_amount"`
	CurrentAmount   float64  `json:"current_amount"`
	Deadline        string   `json:"deadline"`
	CreatedAt       string   `json:"created_at"`
	PercentComplete float64  `json:"percentComplete"`
	Remaining       float64  `json:"remaining"`
	DaysLeft        int      `json:"daysLeft"`
	MonthlyNeeded   *float64 `json:"monthlyNeeded,omitempty"`
}

// NewGoalResponse maps a goal, deriving progress against now
func NewGoalResponse(g *entity.Goal, now time.Time) GoalResponse {
	resp := GoalResponse{
		ID:              g.ID,
		UserID:          g.UserID,
		Name:            g.Name,
		TargetAmount:    Amount(g.TargetAmount),
		CurrentAmount:   Amount(g.CurrentAmount),
		Deadline:        entity.FormatDate(g.Deadline),
		CreatedAt:       g.CreatedAt.UTC().Format(time.RFC3339),
		PercentComplete: Percentage(g.PercentComplete()),
		Remaining:       Amount(g.Remaining()),
		DaysLeft:        g.DaysLeft(now),
	}
	if needed, ok := g.MonthlyNeeded(now); ok {
		v := Amount(needed)
		resp.MonthlyNeeded = &v
	}
	return resp
}

// NewGoalList maps goals, never returning nil
func NewGoalList(goals []*entity.Goal, now time.Time) []GoalResponse {
	list := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		list = append(list, NewGoalResponse(g, now))
	}
	return list
}
