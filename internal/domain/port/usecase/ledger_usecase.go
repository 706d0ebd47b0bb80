package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// RecordTransactionRequest carries a new ledger entry as submitted.
// A nil Amount means the field was absent.
type RecordTransactionRequest struct {
	Type        string
	Amount      *decimal.Decimal
	Category    string
	Description string
	Date        string
}

// LedgerUseCase records and lists income and expense transactions
type LedgerUseCase interface {
	// List returns the user's transactions, newest first
	List(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Record stores a transaction and returns its ID. Expenses also count
	// against the matching budget, in the same database transaction.
	Record(ctx context.Context, userID uint64, req RecordTransactionRequest) (uint64, error)
}
