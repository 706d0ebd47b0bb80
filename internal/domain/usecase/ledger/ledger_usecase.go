package ledger

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/event"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
)

// LedgerUseCase records income and expense transactions
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	publisher    eventport.Publisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	publisher eventport.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns all transactions of the user, newest first
func (u *LedgerUseCase) List(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	txns, err := u.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to fetch transactions", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return txns, nil
}
