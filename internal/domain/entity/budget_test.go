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

func TestNewBudget(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Starts with nothing spent", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		b, err := NewBudget(1, "Food", decimal.NewFromInt(200), mockTime)

		require.NoError(t, err)
		assert.True(t, b.SpentAmount.IsZero())
		assert.Equal(t, fixedTime, b.CreatedAt)
		assert.Equal(t, 0.0, b.UsedPercent())
	})

	t.Run("Requires category and positive limit", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewBudget(1, "", decimal.NewFromInt(200), mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewBudget(1, "Food", decimal.Zero, mockTime)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestBudgetDerivedFields(t *testing.T) {
	b := &Budget{Category: "Food", LimitAmount: decimal.NewFromInt(200), SpentAmount: decimal.NewFromInt(100)}

	assert.Equal(t, 50.0, b.UsedPercent())
	assert.False(t, b.IsOverBudget())
	assert.True(t, b.AmountOver().IsZero())

	b.SpentAmount = decimal.NewFromInt(250)

	assert.Equal(t, 125.0, b.UsedPercent())
	assert.True(t, b.IsOverBudget())
	assert.True(t, b.AmountOver().Equal(decimal.NewFromInt(50)))
}

func TestBudgetExactlyAtLimitIsNotOver(t *testing.T) {
	b := &Budget{LimitAmount: decimal.NewFromInt(100), SpentAmount: decimal.NewFromInt(100)}

	assert.Equal(t, 100.0, b.UsedPercent())
	assert.False(t, b.IsOverBudget())
}
