package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/event"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/event"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// BudgetUseCase manages category budgets and keeps their spent totals in
// step with recorded expenses
type BudgetUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBudgetUseCase creates a new BudgetUseCase
func NewBudgetUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BudgetUseCase {
	return &BudgetUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Subscribe registers the budget tracker for ledger events
func (u *BudgetUseCase) Subscribe(subscriber eventport.Subscriber) {
	subscriber.Subscribe(event.ExpenseRecordedName, u.HandleExpenseRecorded)
}

// List returns the user's budgets ordered by category
func (u *BudgetUseCase) List(ctx context.Context, userID uint64) ([]*entity.Budget, error) {
	budgets, err := u.uow.GetBudgetRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to fetch budgets", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return budgets, nil
}

// Upsert sets the limit of a category budget. An existing budget for the
// category has its spent amount reset to zero.
func (u *BudgetUseCase) Upsert(ctx context.Context, userID uint64, req portuse.UpsertBudgetRequest) (uint64, error) {
	if strings.TrimSpace(req.Category) == "" || req.LimitAmount == nil {
		return 0, &errs.ValidationError{Reason: "Category and limit amount are required"}
	}

	budget, err := entity.NewBudget(userID, req.Category, *req.LimitAmount, u.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := u.uow.GetBudgetRepository(ctx).Upsert(ctx, budget); err != nil {
		u.logger.Error("Failed to save budget", map[string]any{
			"userId":   userID,
			"category": budget.Category,
			"error":    err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Budget saved", map[string]any{
		"userId":      userID,
		"budgetId":    budget.ID,
		"category":    budget.Category,
		"limitAmount": budget.LimitAmount.StringFixed(entity.MaxDecimalPlaces),
	})

	return budget.ID, nil
}

// HandleExpenseRecorded adds an expense to the matching budget. A category
// without a budget is left alone.
func (u *BudgetUseCase) HandleExpenseRecorded(ctx context.Context, evt event.Event) error {
	expense, ok := evt.(event.ExpenseRecorded)
	if !ok {
		return fmt.Errorf("%w: unexpected event %T", errs.ErrInternalServer, evt)
	}

	updated, err := u.uow.GetBudgetRepository(ctx).IncrementSpent(ctx, expense.UserID, expense.Category, expense.Amount)
	if err != nil {
		return err
	}

	if updated {
		u.logger.Debug("Expense applied to budget", map[string]any{
			"userId":        expense.UserID,
			"category":      expense.Category,
			"transactionId": expense.TransactionID,
		})
	}
	return nil
}
