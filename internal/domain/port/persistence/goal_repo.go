package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// GoalRepository stores savings goals
type GoalRepository interface {
	// Create saves a new goal and sets its ID
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	Create(ctx context.Context, goal *entity.Goal) error

	// ListByUser returns every goal of the user, oldest first
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Goal, error)

	// GetByID retrieves a goal owned by the user
	//
	// Possible errors:
	// - ErrGoalNotFound: If no goal with that ID belongs to the user
	// - ErrStore: If the database operation fails
	GetByID(ctx context.Context, userID, goalID uint64) (*entity.Goal, error)

	// Update overwrites name, target, current and deadline of a goal owned by
	// goal.UserID
	//
	// Possible errors:
	// - ErrGoalNotFound: If no row matched the goal ID and owner
	// - ErrStore: If the database operation fails
	Update(ctx context.Context, goal *entity.Goal) error

	// SumCurrent totals the current amount of all the user's goals
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	SumCurrent(ctx context.Context, userID uint64) (decimal.Decimal, error)
}
