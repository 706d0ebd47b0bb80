package ledger

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/event"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Record validates and stores a transaction. For expenses an ExpenseRecorded
// event is published inside the same database transaction, so the budget
// increment and the ledger insert commit or roll back together.
func (u *LedgerUseCase) Record(ctx context.Context, userID uint64, req portuse.RecordTransactionRequest) (uint64, error) {
	txn, err := u.buildTransaction(userID, req)
	if err != nil {
		return 0, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return 0, errs.NewStoreError("begin transaction", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to roll back transaction", map[string]any{
					"userId": userID,
					"error":  rbErr.Error(),
				})
			}
		}
	}()

	if err := u.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		u.logger.Error("Failed to create transaction", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return 0, err
	}

	if txn.IsExpense() {
		evt := event.ExpenseRecorded{
			UserID:        userID,
			TransactionID: txn.ID,
			Category:      txn.Category,
			Amount:        txn.Amount,
			Date:          txn.Date,
		}
		if err := u.publisher.Publish(txCtx, evt); err != nil {
			u.logger.Error("Failed to apply expense to budget", map[string]any{
				"userId":   userID,
				"category": txn.Category,
				"error":    err.Error(),
			})
			return 0, err
		}
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return 0, errs.NewStoreError("commit transaction", err)
	}
	committed = true

	u.logger.Info("Transaction recorded", map[string]any{
		"userId":        userID,
		"transactionId": txn.ID,
		"type":          string(txn.Kind),
		"amount":        txn.Amount.StringFixed(entity.MaxDecimalPlaces),
		"category":      txn.Category,
	})

	return txn.ID, nil
}

func (u *LedgerUseCase) buildTransaction(userID uint64, req portuse.RecordTransactionRequest) (*entity.Transaction, error) {
	if strings.TrimSpace(req.Type) == "" ||
		req.Amount == nil ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Date) == "" {
		return nil, &errs.ValidationError{Reason: "All fields are required"}
	}

	kind, err := entity.ParseTransactionKind(req.Type)
	if err != nil {
		return nil, err
	}
	date, err := entity.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	return entity.NewTransaction(userID, kind, *req.Amount, req.Category, req.Description, date, u.timeProvider)
}
