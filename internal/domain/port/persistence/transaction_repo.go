package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// TransactionRepository stores the append-only ledger
type TransactionRepository interface {
	// Create appends a transaction and sets its ID
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	Create(ctx context.Context, txn *entity.Transaction) error

	// ListByUser returns every transaction of the user, newest date first,
	// ties broken by ID descending
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListByUserInRange returns the user's transactions dated within r,
	// in the same order as ListByUser
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	ListByUserInRange(ctx context.Context, userID uint64, r entity.DateRange) ([]*entity.Transaction, error)

	// Totals sums income and expenses of the user's ledger
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	Totals(ctx context.Context, userID uint64) (entity.LedgerTotals, error)
}
