package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// TransactionKind is the direction of a money movement
type TransactionKind string

// Transaction kinds
const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// ParseTransactionKind converts raw input into a TransactionKind
func ParseTransactionKind(kind string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(kind))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	case "":
		return "", errs.NewValidationError("type", "is required")
	default:
		return "", errs.NewValidationError("type", fmt.Sprintf("must be one of: income, expense (got %q)", kind))
	}
}

// IsValid reports whether k is one of the known kinds
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a dated, categorized money movement owned by one user.
// Transactions are append-only.
type Transaction struct {
	ID          uint64
	UserID      uint64
	Kind        TransactionKind
	Amount      decimal.Decimal
	Category    string
	Description string // empty when not supplied
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new transaction with basic validation
func NewTransaction(
	userID uint64,
	kind TransactionKind,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if !kind.IsValid() {
		return nil, errs.NewValidationError("type", "must be one of: income, expense")
	}
	if err := ValidatePositiveAmount("amount", amount); err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errs.NewValidationError("category", "is required")
	}
	if date.IsZero() {
		return nil, errs.NewValidationError("date", "is required")
	}

	return &Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(description),
		Date:        TruncateToDate(date),
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsExpense returns true if this transaction counts against budgets
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// LedgerTotals is the aggregate of one user's ledger
type LedgerTotals struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int64
}
