package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/event"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/budget"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
)

type budgetFlow struct {
	ctx     context.Context
	bus     *event.Bus
	ledger  *ledger.LedgerUseCase
	budgets *budget.BudgetUseCase
	userID  uint64
}

// newBudgetFlow wires the ledger and budget use cases through a real bus and
// a migrated in-memory database, the same way cmd/api does
func newBudgetFlow(t *testing.T) *budgetFlow {
	t.Helper()
	log := logger.NewNoopLogger()
	clock := timeprovider.NewFixedTimeProvider(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC))
	manager := database.NewTestDB(t, log, clock)
	ctx := context.Background()

	user, err := entity.NewUser("Jane Doe", "jane@example.com", "jdoe", "hash", clock)
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(manager.DB(), log).Create(ctx, user))

	uow := manager.CreateUnitOfWork()
	bus := event.NewBus()
	budgets := budget.NewBudgetUseCase(uow, clock, log)
	budgets.Subscribe(bus)

	return &budgetFlow{
		ctx:     ctx,
		bus:     bus,
		ledger:  ledger.NewLedgerUseCase(uow, bus, clock, log),
		budgets: budgets,
		userID:  user.ID,
	}
}

func (f *budgetFlow) record(t *testing.T, kind, amount, category string) error {
	t.Helper()
	d := decimal.RequireFromString(amount)
	_, err := f.ledger.Record(f.ctx, f.userID, portuse.RecordTransactionRequest{
		Type:     kind,
		Amount:   &d,
		Category: category,
		Date:     "2025-06-10",
	})
	return err
}

func (f *budgetFlow) setBudget(t *testing.T, category, limit string) {
	t.Helper()
	d := decimal.RequireFromString(limit)
	_, err := f.budgets.Upsert(f.ctx, f.userID, portuse.UpsertBudgetRequest{Category: category, LimitAmount: &d})
	require.NoError(t, err)
}

func (f *budgetFlow) budget(t *testing.T, category string) *entity.Budget {
	t.Helper()
	list, err := f.budgets.List(f.ctx, f.userID)
	require.NoError(t, err)
	for _, b := range list {
		if b.Category == category {
			return b
		}
	}
	t.Fatalf("no budget for category %q", category)
	return nil
}

func TestExpensesFlowIntoBudget(t *testing.T) {
	f := newBudgetFlow(t)

	// Recorded before the budget exists
	require.NoError(t, f.record(t, "expense", "40", "Food"))
	budgets, err := f.budgets.List(f.ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	f.setBudget(t, "Food", "200")
	assert.True(t, f.budget(t, "Food").SpentAmount.IsZero())

	for _, amount := range []string{"20", "30", "50"} {
		require.NoError(t, f.record(t, "expense", amount, "Food"))
	}
	food := f.budget(t, "Food")
	assert.True(t, food.SpentAmount.Equal(decimal.NewFromInt(100)), "spent %s", food.SpentAmount)
	assert.Equal(t, 50.0, food.UsedPercent())

	require.NoError(t, f.record(t, "income", "500", "Food"))
	assert.True(t, f.budget(t, "Food").SpentAmount.Equal(decimal.NewFromInt(100)))

	// No budget is created for an unbudgeted category
	require.NoError(t, f.record(t, "expense", "15", "Travel"))
	budgets, err = f.budgets.List(f.ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)

	f.setBudget(t, "Food", "300")
	food = f.budget(t, "Food")
	assert.True(t, food.SpentAmount.IsZero())
	assert.True(t, food.LimitAmount.Equal(decimal.NewFromInt(300)))

	txns, err := f.ledger.List(f.ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, txns, 6)
}

func TestFailedBudgetUpdateRollsBackExpense(t *testing.T) {
	f := newBudgetFlow(t)
	f.setBudget(t, "Food", "200")

	f.bus.Subscribe(event.ExpenseRecordedName, func(ctx context.Context, evt event.Event) error {
		return errors.New("downstream failure")
	})

	require.Error(t, f.record(t, "expense", "25", "Food"))

	assert.True(t, f.budget(t, "Food").SpentAmount.IsZero())
	txns, err := f.ledger.List(f.ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestConcurrentExpensesAllCount(t *testing.T) {
	f := newBudgetFlow(t)
	f.setBudget(t, "Food", "500")

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			return f.record(t, "expense", "1", "Food")
		})
	}
	require.NoError(t, g.Wait())

	assert.True(t, f.budget(t, "Food").SpentAmount.Equal(decimal.NewFromInt(20)))
}
