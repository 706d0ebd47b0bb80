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

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind("income")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, kind)

	kind, err = ParseTransactionKind(" Expense ")
	require.NoError(t, err)
	assert.Equal(t, KindExpense, kind)

	_, err = ParseTransactionKind("transfer")
	assert.True(t, errs.IsValidationError(err))

	_, err = ParseTransactionKind("")
	assert.True(t, errs.IsValidationError(err))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("date", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-03-15", FormatDate(d))

	for _, bad := range []string{"", "15/03/2024", "2024-13-01", "2024-03-15T10:00:00Z"} {
		_, err := ParseDate("date", bad)
		assert.True(t, errs.IsValidationError(err), "input %q", bad)
	}
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Valid expense", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, KindExpense, decimal.RequireFromString("20.50"), " Food ", "", date, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), txn.UserID)
		assert.Equal(t, "Food", txn.Category)
		assert.True(t, txn.IsExpense())
		assert.Equal(t, KindExpense, txn.Kind)
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.Equal(t, date, txn.Date)
	})

	t.Run("Date keeps only the calendar day", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, KindIncome, decimal.NewFromInt(5), "Salary", "March", date.Add(13*time.Hour), mockTime)

		require.NoError(t, err)
		assert.Equal(t, date, txn.Date)
		assert.Equal(t, "March", txn.Description)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewTransaction(1, KindExpense, decimal.Zero, "Food", "", date, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewTransaction(1, KindExpense, decimal.NewFromInt(-10), "Food", "", date, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewTransaction(1, TransactionKind("gift"), decimal.NewFromInt(10), "Food", "", date, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewTransaction(1, KindExpense, decimal.NewFromInt(10), "  ", "", date, mockTime)
		assert.True(t, errs.IsValidationError(err))

		_, err = NewTransaction(1, KindExpense, decimal.NewFromInt(10), "Food", "", time.Time{}, mockTime)
		assert.True(t, errs.IsValidationError(err))
	})
}
