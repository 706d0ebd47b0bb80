package entity

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

const (
	hoursPerDay  = 24
	daysPerMonth = 30
)

// Goal is a savings target with an accumulated current amount and a deadline.
// Current is not clamped at the target.
type Goal struct {
	ID            uint64
	UserID        uint64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a goal, validating the user supplied fields
func NewGoal(
	userID uint64,
	name string,
	target decimal.Decimal,
	current decimal.Decimal,
	deadline time.Time,
	timeProvider coreport.TimeProvider,
) (*Goal, error) {
	g := &Goal{UserID: userID}
	if err := g.apply(name, target, current, deadline); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	return g, nil
}

// Replace overwrites every user editable field of the goal
func (g *Goal) Replace(name string, target, current decimal.Decimal, deadline time.Time, now time.Time) error {
	if err := g.apply(name, target, current, deadline); err != nil {
		return err
	}
	g.UpdatedAt = now
	return nil
}

func (g *Goal) apply(name string, target, current decimal.Decimal, deadline time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValidationError("name", "is required")
	}
	if err := ValidatePositiveAmount("targetAmount", target); err != nil {
		return err
	}
	if err := ValidateNonNegativeAmount("currentAmount", current); err != nil {
		return err
	}
	if deadline.IsZero() {
		return errs.NewValidationError("deadline", "is required")
	}

	g.Name = name
	g.TargetAmount = target
	g.CurrentAmount = current
	g.Deadline = TruncateToDate(deadline)
	return nil
}

// AddProgress increases the current amount by delta, which must be positive
func (g *Goal) AddProgress(delta decimal.Decimal, now time.Time) error {
	if err := ValidatePositiveAmount("amount", delta); err != nil {
		return err
	}
	current := g.CurrentAmount.Add(delta)
	if current.GreaterThan(MaxAmount) {
		return errs.NewValidationError("amount", "would take the saved amount past 9999999999.99")
	}
	g.CurrentAmount = current
	g.UpdatedAt = now
	return nil
}

// PercentComplete is current as a percentage of target
func (g *Goal) PercentComplete() float64 {
	return Percent(g.CurrentAmount, g.TargetAmount)
}

// Remaining is target minus current, negative once the goal is exceeded
func (g *Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// DaysLeft is the number of days until the deadline, rounded up.
// It goes negative once the deadline has passed.
func (g *Goal) DaysLeft(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / hoursPerDay))
}

// MonthlyNeeded is the amount to save each 30 day period to reach the target by
// the deadline, rounded up to a whole unit. ok is false when no days are left.
func (g *Goal) MonthlyNeeded(now time.Time) (amount decimal.Decimal, ok bool) {
	daysLeft := g.DaysLeft(now)
	if daysLeft <= 0 {
		return decimal.Zero, false
	}
	// remaining / (daysLeft/30) == remaining*30/daysLeft
	perMonth := g.Remaining().
		Mul(decimal.NewFromInt(daysPerMonth)).
		Div(decimal.NewFromInt(int64(daysLeft)))
	return perMonth.Ceil(), true
}
