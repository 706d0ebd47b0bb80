package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// BudgetRequest is the body of POST /api/budgets
type BudgetRequest struct {
	Category    string           `json:"category"`
	LimitAmount *decimal.Decimal `json:"limitAmount"`
}

// BudgetResponse is one budget with its usage
type BudgetResponse struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
	SpentAmount float64 `json:"spent_amount"`
	CreatedAt   string  `json:"created_at"`
	UsedPercent float64 `json:"usedPercent"`
	OverBudget  bool    `json:"overBudget"`
	AmountOver  float64 `json:"amountOver"`
}

// NewBudgetList maps budgets, never returning nil
func NewBudgetList(budgets []*entity.Budget) []BudgetResponse {
	list := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		list = append(list, BudgetResponse{
			ID:          b.ID,
			UserID:      b.UserID,
			Category:    b.Category,
			LimitAmount: Amount(b.LimitAmount),
			SpentAmount: Amount(b.SpentAmount),
			CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
			UsedPercent: Percentage(b.UsedPercent()),
			OverBudget:  b.IsOverBudget(),
			AmountOver:  Amount(b.AmountOver()),
		})
	}
	return list
}
