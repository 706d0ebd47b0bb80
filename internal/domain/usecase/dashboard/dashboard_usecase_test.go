package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/persistence"
)

type dashboardMocks struct {
	uow     *persistencemocks.MockUnitOfWork
	txns    *persistencemocks.MockTransactionRepository
	budgets *persistencemocks.MockBudgetRepository
	goals   *persistencemocks.MockGoalRepository
	clock   *coremocks.MockTimeProvider
}

func setupDashboard(t *testing.T) (*DashboardUseCase, dashboardMocks) {
	m := dashboardMocks{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		txns:    persistencemocks.NewMockTransactionRepository(t),
		budgets: persistencemocks.NewMockBudgetRepository(t),
		goals:   persistencemocks.NewMockGoalRepository(t),
		clock:   coremocks.NewMockTimeProvider(t),
	}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txns).Maybe()
	m.uow.EXPECT().GetBudgetRepository(mock.Anything).Return(m.budgets).Maybe()
	m.uow.EXPECT().GetGoalRepository(mock.Anything).Return(m.goals).Maybe()
	return NewDashboardUseCase(m.uow, m.clock, logger), m
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Net subtracts expenses and goal savings", func(t *testing.T) {
		uc, m := setupDashboard(t)

		m.txns.EXPECT().Totals(mock.Anything, uint64(1)).Return(entity.LedgerTotals{
			TotalIncome:      decimal.NewFromInt(1000),
			TotalExpenses:    decimal.NewFromInt(400),
			TransactionCount: 2,
		}, nil).Once()
		m.goals.EXPECT().SumCurrent(mock.Anything, uint64(1)).Return(decimal.NewFromInt(100), nil).Once()

		summary, err := uc.Summary(ctx, 1)

		require.NoError(t, err)
		assert.True(t, summary.NetAmount().Equal(decimal.NewFromInt(500)))
		assert.True(t, summary.GoalSavings.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, int64(2), summary.TransactionCount)
	})

	t.Run("Either read failing fails the summary", func(t *testing.T) {
		uc, m := setupDashboard(t)
		storeErr := errs.NewStoreError("sum goals", errors.New("boom"))

		m.txns.EXPECT().Totals(mock.Anything, uint64(1)).Return(entity.LedgerTotals{}, nil).Maybe()
		m.goals.EXPECT().SumCurrent(mock.Anything, uint64(1)).Return(decimal.Zero, storeErr).Once()

		_, err := uc.Summary(ctx, 1)

		assert.True(t, errs.IsStoreError(err))
	})
}

func TestMonthlyTrend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)

	t.Run("Queries only the trend window", func(t *testing.T) {
		uc, m := setupDashboard(t)
		window := entity.TrendWindow(now, 7)

		m.clock.EXPECT().Now().Return(now).Once()
		m.txns.EXPECT().ListByUserInRange(ctx, uint64(1), window).Return([]*entity.Transaction{
			{Kind: entity.KindExpense, Amount: decimal.NewFromInt(30), Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		}, nil).Once()

		trend, err := uc.MonthlyTrend(ctx, 1, 7)

		require.NoError(t, err)
		require.Len(t, trend, 7)
		assert.Equal(t, "Mar", trend[6].Label)
		assert.True(t, trend[6].Expenses.Equal(decimal.NewFromInt(30)))
	})

	t.Run("Month count out of range", func(t *testing.T) {
		uc, _ := setupDashboard(t)

		_, err := uc.MonthlyTrend(ctx, 1, 0)
		assert.True(t, errs.IsValidationError(err))

		_, err = uc.MonthlyTrend(ctx, 1, MaxTrendMonths+1)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	uc, m := setupDashboard(t)

	m.budgets.EXPECT().ListByUser(ctx, uint64(1)).Return([]*entity.Budget{
		{Category: "Food", SpentAmount: decimal.NewFromInt(100)},
		{Category: "Fun", SpentAmount: decimal.Zero},
	}, nil).Once()

	breakdown, err := uc.CategoryBreakdown(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, breakdown.Entries, 2)
	require.Len(t, breakdown.Proportional, 1)
	assert.Equal(t, 100.0, breakdown.Proportional[0].Percent)
}

func TestMonthlySummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	uc, m := setupDashboard(t)

	m.clock.EXPECT().Now().Return(now).Once()
	m.txns.EXPECT().ListByUserInRange(mock.Anything, uint64(1), mock.Anything).Return([]*entity.Transaction{
		{Kind: entity.KindIncome, Amount: decimal.NewFromInt(700), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()
	m.txns.EXPECT().Totals(mock.Anything, uint64(1)).Return(entity.LedgerTotals{
		TotalIncome: decimal.NewFromInt(700),
	}, nil).Once()
	m.goals.EXPECT().SumCurrent(mock.Anything, uint64(1)).Return(decimal.NewFromInt(70), nil).Once()

	summary, err := uc.MonthlySummary(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Months)
	assert.Equal(t, "Mar", summary.BestMonth)
	assert.True(t, summary.AverageIncome.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 90.0, summary.SavingsRate)
}
