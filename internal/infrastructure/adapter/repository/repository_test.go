package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	ctx          context.Context
	manager      *database.Manager
	clock        *timeprovider.FixedTimeProvider
	users        *repository.UserRepository
	transactions *repository.TransactionRepository
	budgets      *repository.BudgetRepository
	goals        *repository.GoalRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNoopLogger()
	clock := timeprovider.NewFixedTimeProvider(testNow)
	manager := database.NewTestDB(t, log, clock)
	db := manager.DB()

	return &fixture{
		ctx:          context.Background(),
		manager:      manager,
		clock:        clock,
		users:        repository.NewUserRepository(db, log),
		transactions: repository.NewTransactionRepository(db, log),
		budgets:      repository.NewBudgetRepository(db, clock, log),
		goals:        repository.NewGoalRepository(db, log),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *entity.User {
	t.Helper()
	user, err := entity.NewUser("Test "+username, username+"@example.com", username, "hash", f.clock)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(f.ctx, user))
	return user
}

func (f *fixture) record(t *testing.T, userID uint64, kind entity.TransactionKind, amount, category, date string) *entity.Transaction {
	t.Helper()
	d, err := entity.ParseDate("date", date)
	require.NoError(t, err)
	txn, err := entity.NewTransaction(userID, kind, decimal.RequireFromString(amount), category, "", d, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.transactions.Create(f.ctx, txn))
	return txn
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	assert.NotZero(t, user.ID)

	byUsername, err := f.users.FindByUsernameOrEmail(f.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)
	assert.Equal(t, "hash", byUsername.PasswordHash)

	byEmail, err := f.users.FindByUsernameOrEmail(f.ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := f.users.GetByID(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test alice", byID.FullName)
}

func TestUserRepository_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.FindByUsernameOrEmail(f.ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = f.users.GetByID(f.ctx, 999)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_Duplicates(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice")

	exists, err := f.users.ExistsByEmailOrUsername(f.ctx, "other@example.com", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.users.ExistsByEmailOrUsername(f.ctx, "alice@example.com", "other")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.users.ExistsByEmailOrUsername(f.ctx, "bob@example.com", "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	dup, err := entity.NewUser("Alice Again", "alice@example.com", "alice2", "hash", f.clock)
	require.NoError(t, err)
	err = f.users.Create(f.ctx, dup)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestTransactionRepository_ListOrdering(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	other := f.createUser(t, "bob")

	first := f.record(t, user.ID, entity.KindIncome, "1000", "Salary", "2025-06-01")
	second := f.record(t, user.ID, entity.KindExpense, "20", "Food", "2025-06-10")
	third := f.record(t, user.ID, entity.KindExpense, "30", "Food", "2025-06-10")
	f.record(t, other.ID, entity.KindExpense, "99", "Food", "2025-06-12")

	txns, err := f.transactions.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// date DESC, then id DESC
	assert.Equal(t, third.ID, txns[0].ID)
	assert.Equal(t, second.ID, txns[1].ID)
	assert.Equal(t, first.ID, txns[2].ID)

	assert.Equal(t, entity.KindExpense, txns[0].Kind)
	assert.True(t, decimal.NewFromInt(30).Equal(txns[0].Amount))
	assert.Equal(t, "2025-06-10", entity.FormatDate(txns[0].Date))
	assert.Empty(t, txns[0].Description)
}

func TestTransactionRepository_Description(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	d, err := entity.ParseDate("date", "2025-06-02")
	require.NoError(t, err)
	txn, err := entity.NewTransaction(user.ID, entity.KindExpense, decimal.RequireFromString("12.34"), "Food", "Lunch", d, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.transactions.Create(f.ctx, txn))

	txns, err := f.transactions.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Lunch", txns[0].Description)
	assert.Equal(t, "12.34", txns[0].Amount.StringFixed(2))
}

func TestTransactionRepository_ListByUserInRange(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	f.record(t, user.ID, entity.KindIncome, "100", "Salary", "2024-11-30")
	inside := f.record(t, user.ID, entity.KindIncome, "200", "Salary", "2024-12-01")
	last := f.record(t, user.ID, entity.KindExpense, "50", "Food", "2025-06-30")
	f.record(t, user.ID, entity.KindExpense, "10", "Food", "2025-07-01")

	window := entity.TrendWindow(testNow, entity.TrendMonths)
	txns, err := f.transactions.ListByUserInRange(f.ctx, user.ID, window)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, last.ID, txns[0].ID)
	assert.Equal(t, inside.ID, txns[1].ID)
}

func TestTransactionRepository_Totals(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	totals, err := f.transactions.Totals(f.ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.TotalExpenses.IsZero())
	assert.Zero(t, totals.TransactionCount)

	f.record(t, user.ID, entity.KindIncome, "1000", "Salary", "2025-06-01")
	f.record(t, user.ID, entity.KindExpense, "150.25", "Food", "2025-06-02")
	f.record(t, user.ID, entity.KindExpense, "249.75", "Rent", "2025-06-03")

	totals, err = f.transactions.Totals(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", totals.TotalIncome.StringFixed(2))
	assert.Equal(t, "400.00", totals.TotalExpenses.StringFixed(2))
	assert.Equal(t, int64(3), totals.TransactionCount)
}

func TestTransactionRepository_UnknownUserViolatesForeignKey(t *testing.T) {
	f := newFixture(t)

	d, err := entity.ParseDate("date", "2025-06-02")
	require.NoError(t, err)
	txn, err := entity.NewTransaction(404, entity.KindExpense, decimal.NewFromInt(1), "Food", "", d, f.clock)
	require.NoError(t, err)

	err = f.transactions.Create(f.ctx, txn)
	assert.True(t, errs.IsStoreError(err))
}

func TestBudgetRepository_UpsertResetsSpent(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	budget, err := entity.NewBudget(user.ID, "Food", decimal.NewFromInt(200), f.clock)
	require.NoError(t, err)
	require.NoError(t, f.budgets.Upsert(f.ctx, budget))
	firstID := budget.ID
	assert.NotZero(t, firstID)

	for _, amount := range []int64{20, 30, 50} {
		matched, err := f.budgets.IncrementSpent(f.ctx, user.ID, "Food", decimal.NewFromInt(amount))
		require.NoError(t, err)
		assert.True(t, matched)
	}

	budgets, err := f.budgets.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "100.00", budgets[0].SpentAmount.StringFixed(2))
	assert.InDelta(t, 50.0, budgets[0].UsedPercent(), 0.001)

	f.clock.Advance(time.Hour)
	replacement, err := entity.NewBudget(user.ID, "Food", decimal.NewFromInt(300), f.clock)
	require.NoError(t, err)
	require.NoError(t, f.budgets.Upsert(f.ctx, replacement))

	assert.Equal(t, firstID, replacement.ID)
	assert.True(t, replacement.SpentAmount.IsZero())
	assert.Equal(t, "300.00", replacement.LimitAmount.StringFixed(2))

	budgets, err = f.budgets.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].SpentAmount.IsZero())
}

func TestBudgetRepository_IncrementWithoutBudget(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	matched, err := f.budgets.IncrementSpent(f.ctx, user.ID, "Travel", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, matched)

	budgets, err := f.budgets.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestBudgetRepository_ListOrderedByCategory(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	other := f.createUser(t, "bob")

	for _, category := range []string{"Travel", "Food", "Rent"} {
		b, err := entity.NewBudget(user.ID, category, decimal.NewFromInt(100), f.clock)
		require.NoError(t, err)
		require.NoError(t, f.budgets.Upsert(f.ctx, b))
	}
	b, err := entity.NewBudget(other.ID, "Food", decimal.NewFromInt(100), f.clock)
	require.NoError(t, err)
	require.NoError(t, f.budgets.Upsert(f.ctx, b))

	budgets, err := f.budgets.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, budgets, 3)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, "Rent", budgets[1].Category)
	assert.Equal(t, "Travel", budgets[2].Category)
}

func newGoal(t *testing.T, f *fixture, userID uint64, name, target, current string) *entity.Goal {
	t.Helper()
	deadline, err := entity.ParseDate("deadline", "2025-12-31")
	require.NoError(t, err)
	goal, err := entity.NewGoal(userID, name, decimal.RequireFromString(target), decimal.RequireFromString(current), deadline, f.clock)
	require.NoError(t, err)
	require.NoError(t, f.goals.Create(f.ctx, goal))
	return goal
}

func TestGoalRepository_CreateGetUpdate(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")
	goal := newGoal(t, f, user.ID, "Vacation", "3000", "500")

	stored, err := f.goals.GetByID(f.ctx, user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vacation", stored.Name)
	assert.Equal(t, "500.00", stored.CurrentAmount.StringFixed(2))
	assert.Equal(t, "2025-12-31", entity.FormatDate(stored.Deadline))

	require.NoError(t, stored.AddProgress(decimal.NewFromInt(250), f.clock.Now()))
	require.NoError(t, f.goals.Update(f.ctx, stored))

	updated, err := f.goals.GetByID(f.ctx, user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "750.00", updated.CurrentAmount.StringFixed(2))
	assert.Equal(t, "Vacation", updated.Name)
}

func TestGoalRepository_OwnerScoping(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	goal := newGoal(t, f, alice.ID, "Car", "10000", "0")

	_, err := f.goals.GetByID(f.ctx, bob.ID, goal.ID)
	assert.ErrorIs(t, err, errs.ErrGoalNotFound)

	hijack := *goal
	hijack.UserID = bob.ID
	hijack.Name = "Mine now"
	assert.ErrorIs(t, f.goals.Update(f.ctx, &hijack), errs.ErrGoalNotFound)

	stored, err := f.goals.GetByID(f.ctx, alice.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Car", stored.Name)
}

func TestGoalRepository_ListAndSum(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice")

	total, err := f.goals.SumCurrent(f.ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	for i, current := range []string{"100", "250.50", "0"} {
		newGoal(t, f, user.ID, fmt.Sprintf("Goal %d", i), "1000", current)
	}

	goals, err := f.goals.ListByUser(f.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	assert.Equal(t, "Goal 0", goals[0].Name)

	total, err = f.goals.SumCurrent(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "350.50", total.StringFixed(2))
}
