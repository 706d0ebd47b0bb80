package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// GoalRequest carries goal fields as submitted. Nil amounts were absent.
type GoalRequest struct {
	Name          string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      string
}

// GoalUseCase manages savings goals
type GoalUseCase interface {
	// List returns the user's goals
	List(ctx context.Context, userID uint64) ([]*entity.Goal, error)

	// Create adds a goal and returns its ID; a missing current amount is zero
	Create(ctx context.Context, userID uint64, req GoalRequest) (uint64, error)

	// Update replaces every field of a goal owned by the user
	Update(ctx context.Context, userID, goalID uint64, req GoalRequest) error

	// AddProgress adds a positive amount to a goal's current savings
	AddProgress(ctx context.Context, userID, goalID uint64, amount *decimal.Decimal) (*entity.Goal, error)
}
