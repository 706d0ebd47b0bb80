package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
)

// MaxTrendMonths bounds the trend window a client may request
const MaxTrendMonths = 36

// DashboardUseCase aggregates ledger, budget and goal data
type DashboardUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewDashboardUseCase creates a new DashboardUseCase
func NewDashboardUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Summary returns total income, expenses, goal savings and the net amount.
// Ledger totals and goal savings are read concurrently.
func (u *DashboardUseCase) Summary(ctx context.Context, userID uint64) (entity.DashboardSummary, error) {
	var (
		totals  entity.LedgerTotals
		savings decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = u.uow.GetTransactionRepository(gctx).Totals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		savings, err = u.uow.GetGoalRepository(gctx).SumCurrent(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("Failed to fetch dashboard data", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return entity.DashboardSummary{}, err
	}

	return entity.NewDashboardSummary(totals, savings), nil
}

// MonthlyTrend returns per-month income and expenses for the last `months`
// calendar months including the current one
func (u *DashboardUseCase) MonthlyTrend(ctx context.Context, userID uint64, months int) ([]entity.MonthlyTrendEntry, error) {
	if months < 1 || months > MaxTrendMonths {
		return nil, errs.NewValidationError("months", fmt.Sprintf("must be between 1 and %d", MaxTrendMonths))
	}
	return u.monthlyTrend(ctx, userID, months)
}

func (u *DashboardUseCase) monthlyTrend(ctx context.Context, userID uint64, months int) ([]entity.MonthlyTrendEntry, error) {
	now := u.timeProvider.Now()
	txns, err := u.uow.GetTransactionRepository(ctx).ListByUserInRange(ctx, userID, entity.TrendWindow(now, months))
	if err != nil {
		u.logger.Error("Failed to fetch transactions for trend", map[string]any{
			"userId": userID,
			"months": months,
			"error":  err.Error(),
		})
		return nil, err
	}
	return entity.MonthlyTrend(txns, now, months), nil
}

// CategoryBreakdown returns spending per budget category
func (u *DashboardUseCase) CategoryBreakdown(ctx context.Context, userID uint64) (entity.CategoryBreakdown, error) {
	budgets, err := u.uow.GetBudgetRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to fetch budgets for breakdown", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return entity.CategoryBreakdown{}, err
	}
	return entity.NewCategoryBreakdown(budgets), nil
}

// MonthlySummary returns averages and the best month over the default trend
// window, with the savings rate taken from the overall summary
func (u *DashboardUseCase) MonthlySummary(ctx context.Context, userID uint64) (entity.MonthlySummary, error) {
	var (
		trend   []entity.MonthlyTrendEntry
		summary entity.DashboardSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trend, err = u.monthlyTrend(gctx, userID, entity.TrendMonths)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = u.Summary(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.MonthlySummary{}, err
	}

	return entity.NewMonthlySummary(trend, summary), nil
}
