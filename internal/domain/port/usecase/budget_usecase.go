package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// UpsertBudgetRequest carries a budget limit as submitted
type UpsertBudgetRequest struct {
	Category    string
	LimitAmount *decimal.Decimal
}

// BudgetUseCase manages per-category spending limits
type BudgetUseCase interface {
	// List returns the user's budgets ordered by category
	List(ctx context.Context, userID uint64) ([]*entity.Budget, error)

	// Upsert sets the limit for a category, resetting its spent amount,
	// and returns the budget ID
	Upsert(ctx context.Context, userID uint64, req UpsertBudgetRequest) (uint64, error)
}
