package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Event names
const (
	ExpenseRecordedName = "ledger.expense_recorded"
)

// Event is a fact that happened in the domain
type Event interface {
	EventName() string
}

// Handler reacts to a published event
type Handler func(ctx context.Context, evt Event) error

// ExpenseRecorded is published after an expense transaction is stored
type ExpenseRecorded struct {
	UserID        uint64
	TransactionID uint64
	Category      string
	Amount        decimal.Decimal
	Date          time.Time
}

// EventName implements Event
func (ExpenseRecorded) EventName() string {
	return ExpenseRecordedName
}
