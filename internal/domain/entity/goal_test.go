package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
)

func newTestGoal(target, current int64, deadline time.Time) *Goal {
	return &Goal{
		ID:            1,
		UserID:        1,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
		Deadline:      deadline,
	}
}

func TestNewGoal(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Valid goal", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		g, err := NewGoal(1, "Vacation", decimal.NewFromInt(1000), decimal.Zero, deadline, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Vacation", g.Name)
		assert.True(t, g.CurrentAmount.IsZero())
		assert.Equal(t, fixedTime, g.CreatedAt)
	})

	t.Run("Rejects invalid fields", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewGoal(1, "", decimal.NewFromInt(1000), decimal.Zero, deadline, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewGoal(1, "Vacation", decimal.Zero, decimal.Zero, deadline, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewGoal(1, "Vacation", decimal.NewFromInt(1000), decimal.NewFromInt(-1), deadline, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewGoal(1, "Vacation", decimal.NewFromInt(1000), decimal.Zero, time.Time{}, mockTime)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestGoalAddProgress(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Two additions equal one combined addition", func(t *testing.T) {
		a := newTestGoal(1000, 100, deadline)
		b := newTestGoal(1000, 100, deadline)

		require.NoError(t, a.AddProgress(decimal.RequireFromString("25.50"), now))
		require.NoError(t, a.AddProgress(decimal.RequireFromString("74.50"), now))
		require.NoError(t, b.AddProgress(decimal.NewFromInt(100), now))

		assert.True(t, a.CurrentAmount.Equal(b.CurrentAmount))
		assert.True(t, a.CurrentAmount.Equal(decimal.NewFromInt(200)))
	})

	t.Run("No clamp at target", func(t *testing.T) {
		g := newTestGoal(100, 90, deadline)

		require.NoError(t, g.AddProgress(decimal.NewFromInt(50), now))

		assert.True(t, g.CurrentAmount.Equal(decimal.NewFromInt(140)))
		assert.Equal(t, 140.0, g.PercentComplete())
		assert.True(t, g.Remaining().Equal(decimal.NewFromInt(-40)))
	})

	t.Run("Rejects non-positive delta", func(t *testing.T) {
		g := newTestGoal(100, 10, deadline)

		assert.True(t, errs.IsValidationError(g.AddProgress(decimal.Zero, now)))
		assert.True(t, errs.IsValidationError(g.AddProgress(decimal.NewFromInt(-5), now)))
		assert.True(t, g.CurrentAmount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("Rejects a total past the storable maximum", func(t *testing.T) {
		g := newTestGoal(100, 10, deadline)
		g.CurrentAmount = MaxAmount.Sub(decimal.NewFromInt(1))

		assert.True(t, errs.IsValidationError(g.AddProgress(decimal.NewFromInt(2), now)))
		assert.True(t, g.CurrentAmount.Equal(MaxAmount.Sub(decimal.NewFromInt(1))))
	})
}

func TestGoalDerivedFields(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Future deadline", func(t *testing.T) {
		g := newTestGoal(1000, 250, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 25.0, g.PercentComplete())
		assert.True(t, g.Remaining().Equal(decimal.NewFromInt(750)))
		// 89.5 days rounds up
		assert.Equal(t, 90, g.DaysLeft(now))

		monthly, ok := g.MonthlyNeeded(now)
		require.True(t, ok)
		assert.True(t, monthly.Equal(decimal.NewFromInt(250)), monthly.String())
	})

	t.Run("Monthly amount rounds up", func(t *testing.T) {
		g := newTestGoal(1000, 0, time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

		assert.Equal(t, 45, g.DaysLeft(now))
		monthly, ok := g.MonthlyNeeded(now)
		require.True(t, ok)
		// 1000 / (45/30) = 666.67
		assert.True(t, monthly.Equal(decimal.NewFromInt(667)), monthly.String())
	})

	t.Run("Past deadline", func(t *testing.T) {
		g := newTestGoal(1000, 250, time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, -12, g.DaysLeft(now))
		_, ok := g.MonthlyNeeded(now)
		assert.False(t, ok)
	})
}
