package goal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// GoalUseCase manages savings goals
type GoalUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGoalUseCase creates a new GoalUseCase
func NewGoalUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *GoalUseCase {
	return &GoalUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns the user's goals
func (u *GoalUseCase) List(ctx context.Context, userID uint64) ([]*entity.Goal, error) {
	goals, err := u.uow.GetGoalRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to fetch goals", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return goals, nil
}

// Create adds a new goal. A missing current amount starts at zero.
func (u *GoalUseCase) Create(ctx context.Context, userID uint64, req portuse.GoalRequest) (uint64, error) {
	if strings.TrimSpace(req.Name) == "" || req.TargetAmount == nil || strings.TrimSpace(req.Deadline) == "" {
		return 0, &errs.ValidationError{Reason: "Name, target amount, and deadline are required"}
	}

	deadline, err := entity.ParseDate("deadline", req.Deadline)
	if err != nil {
		return 0, err
	}
	current := decimal.Zero
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
	}

	goal, err := entity.NewGoal(userID, req.Name, *req.TargetAmount, current, deadline, u.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := u.uow.GetGoalRepository(ctx).Create(ctx, goal); err != nil {
		u.logger.Error("Failed to create goal", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Goal created", map[string]any{
		"userId": userID,
		"goalId": goal.ID,
		"name":   goal.Name,
	})

	return goal.ID, nil
}

// Update replaces every editable field of a goal the user owns
func (u *GoalUseCase) Update(ctx context.Context, userID, goalID uint64, req portuse.GoalRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		req.TargetAmount == nil ||
		req.CurrentAmount == nil ||
		strings.TrimSpace(req.Deadline) == "" {
		return &errs.ValidationError{Reason: "All fields are required"}
	}

	deadline, err := entity.ParseDate("deadline", req.Deadline)
	if err != nil {
		return err
	}

	goal := &entity.Goal{ID: goalID, UserID: userID}
	if err := goal.Replace(req.Name, *req.TargetAmount, *req.CurrentAmount, deadline, u.timeProvider.Now()); err != nil {
		return err
	}

	if err := u.uow.GetGoalRepository(ctx).Update(ctx, goal); err != nil {
		return u.wrapGoalError(goalID, userID, "Failed to update goal", err)
	}

	u.logger.Info("Goal updated", map[string]any{
		"userId": userID,
		"goalId": goalID,
	})
	return nil
}

// AddProgress adds a positive amount to the goal's current savings, keeping
// name, target and deadline, and returns the updated goal
func (u *GoalUseCase) AddProgress(ctx context.Context, userID, goalID uint64, amount *decimal.Decimal) (*entity.Goal, error) {
	if amount == nil {
		return nil, errs.NewValidationError("amount", "is required")
	}
	if err := entity.ValidatePositiveAmount("amount", *amount); err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewStoreError("begin transaction", err)
	}

	goal, err := u.addProgress(txCtx, userID, goalID, *amount, u.timeProvider.Now())
	if err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back transaction", map[string]any{
				"goalId": goalID,
				"error":  rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, errs.NewStoreError("commit transaction", err)
	}

	u.logger.Info("Goal progress added", map[string]any{
		"userId":        userID,
		"goalId":        goalID,
		"amount":        amount.StringFixed(entity.MaxDecimalPlaces),
		"currentAmount": goal.CurrentAmount.StringFixed(entity.MaxDecimalPlaces),
	})
	return goal, nil
}

func (u *GoalUseCase) addProgress(ctx context.Context, userID, goalID uint64, amount decimal.Decimal, now time.Time) (*entity.Goal, error) {
	repo := u.uow.GetGoalRepository(ctx)

	goal, err := repo.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, u.wrapGoalError(goalID, userID, "Failed to load goal", err)
	}
	if err := goal.AddProgress(amount, now); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, goal); err != nil {
		return nil, u.wrapGoalError(goalID, userID, "Failed to update goal", err)
	}
	return goal, nil
}

func (u *GoalUseCase) wrapGoalError(goalID, userID uint64, message string, err error) error {
	if errs.IsNotFoundError(err) {
		return errs.NewGoalError(goalID, userID, err)
	}
	u.logger.Error(message, map[string]any{
		"userId": userID,
		"goalId": goalID,
		"error":  err.Error(),
	})
	return err
}
