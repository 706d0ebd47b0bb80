package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// BudgetRepository stores per-category spending limits
type BudgetRepository interface {
	// Upsert creates the budget for (UserID, Category), or replaces the limit
	// of the existing one and resets its spent amount to zero.
	// The budget's ID and spent amount are set from the stored row.
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	Upsert(ctx context.Context, budget *entity.Budget) error

	// ListByUser returns every budget of the user ordered by category
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Budget, error)

	// IncrementSpent adds amount to the spent total of the user's budget for
	// category. It reports false without error when no such budget exists.
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	IncrementSpent(ctx context.Context, userID uint64, category string, amount decimal.Decimal) (bool, error)
}
