package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	m := model.Transaction{
		UserID:    txn.UserID,
		Type:      string(txn.Kind),
		Amount:    txn.Amount,
		Category:  txn.Category,
		Date:      entity.TruncateToDate(txn.Date),
		CreatedAt: txn.CreatedAt,
	}
	if txn.Description != "" {
		description := txn.Description
		m.Description = &description
	}
	return m
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	txn := &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.TransactionKind(m.Type),
		Amount:    m.Amount,
		Category:  m.Category,
		Date:      entity.TruncateToDate(m.Date),
		CreatedAt: m.CreatedAt,
	}
	if m.Description != nil {
		txn.Description = *m.Description
	}
	return txn
}

func (r *TransactionRepository) storeError(operation string, err error, userID uint64) error {
	r.logger.Error("Ledger query failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return r.errorClassifier.MapError(operation, err, errs.ErrNotFound)
}

// Create appends a transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"user_id":  txn.UserID,
		"type":     txn.Kind,
		"category": txn.Category,
	})

	m := r.entityToModel(txn)
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m); result.Error != nil {
		return r.storeError("creating transaction", result.Error, txn.UserID)
	}

	txn.ID = m.ID
	return nil
}

// ListByUser returns all of the user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, r.storeError("listing transactions", result.Error, userID)
	}
	return r.toEntities(rows), nil
}

// ListByUserInRange returns the user's transactions dated within rng
func (r *TransactionRepository) ListByUserInRange(ctx context.Context, userID uint64, rng entity.DateRange) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, entity.TruncateToDate(rng.From), entity.TruncateToDate(rng.To)).
		Order("date DESC").Order("id DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, r.storeError("listing transactions in range", result.Error, userID)
	}
	return r.toEntities(rows), nil
}

func (r *TransactionRepository) toEntities(rows []model.Transaction) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		txns = append(txns, r.modelToEntity(&rows[i]))
	}
	return txns
}

type ledgerTotalsRow struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int64
}

// Totals sums income and expenses of the user's ledger
func (r *TransactionRepository) Totals(ctx context.Context, userID uint64) (entity.LedgerTotals, error) {
	var row ledgerTotalsRow
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_expenses, "+
				"COUNT(*) AS transaction_count",
			string(entity.KindIncome), string(entity.KindExpense),
		).
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return entity.LedgerTotals{}, r.storeError("summing transactions", result.Error, userID)
	}

	return entity.LedgerTotals{
		TotalIncome:      row.TotalIncome.Round(entity.MaxDecimalPlaces),
		TotalExpenses:    row.TotalExpenses.Round(entity.MaxDecimalPlaces),
		TransactionCount: row.TransactionCount,
	}, nil
}
