package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// Budget is a spending limit for one category of one user, with a running
// total of the expenses recorded against it since it was last set.
type Budget struct {
	ID          uint64
	UserID      uint64
	Category    string
	LimitAmount decimal.Decimal
	SpentAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a budget with a zero spent amount
func NewBudget(userID uint64, category string, limit decimal.Decimal, timeProvider coreport.TimeProvider) (*Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errs.NewValidationError("category", "is required")
	}
	if err := ValidatePositiveAmount("limitAmount", limit); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Budget{
		UserID:      userID,
		Category:    category,
		LimitAmount: limit,
		SpentAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UsedPercent is spent as a percentage of the limit
func (b *Budget) UsedPercent() float64 {
	return Percent(b.SpentAmount, b.LimitAmount)
}

// IsOverBudget reports whether spending went past the limit
func (b *Budget) IsOverBudget() bool {
	return b.SpentAmount.GreaterThan(b.LimitAmount)
}

// AmountOver is how far spending exceeds the limit, zero when within it
func (b *Budget) AmountOver() decimal.Decimal {
	if !b.IsOverBudget() {
		return decimal.Zero
	}
	return b.SpentAmount.Sub(b.LimitAmount)
}
