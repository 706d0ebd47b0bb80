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

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func budgetModelToEntity(m *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		Category:    m.Category,
		LimitAmount: m.LimitAmount.Round(entity.MaxDecimalPlaces),
		SpentAmount: m.SpentAmount.Round(entity.MaxDecimalPlaces),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *BudgetRepository) storeError(operation string, err error, userID uint64, category string) error {
	r.logger.Error("Budget query failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"category":  category,
		"error":     err.Error(),
	})
	return r.errorClassifier.MapError(operation, err, errs.ErrBudgetNotFound)
}

// Upsert creates the (user, category) budget or replaces its limit, resetting
// spent to zero either way
func (r *BudgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	r.logger.Debug("Upserting budget", map[string]any{
		"user_id":  budget.UserID,
		"category": budget.Category,
		"limit":    budget.LimitAmount.String(),
	})

	m := model.Budget{
		UserID:      budget.UserID,
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount,
		SpentAmount: decimal.Zero,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}

	db := r.db.WithContext(ctx)
	result := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.Assignments(map[string]any{
			"limit_amount": m.LimitAmount,
			"spent_amount": decimal.Zero,
			"updated_at":   m.UpdatedAt,
		}),
	}).Create(&m)
	if result.Error != nil {
		return r.storeError("upserting budget", result.Error, budget.UserID, budget.Category)
	}

	// The conflict path does not report the existing row's id on every driver
	var stored model.Budget
	result = db.Where("user_id = ? AND category = ?", budget.UserID, budget.Category).First(&stored)
	if result.Error != nil {
		return r.storeError("reading budget", result.Error, budget.UserID, budget.Category)
	}

	*budget = *budgetModelToEntity(&stored)
	return nil
}

// ListByUser returns the user's budgets ordered by category
func (r *BudgetRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Budget, error) {
	var rows []model.Budget
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category").Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, r.storeError("listing budgets", result.Error, userID, "")
	}

	budgets := make([]*entity.Budget, 0, len(rows))
	for i := range rows {
		budgets = append(budgets, budgetModelToEntity(&rows[i]))
	}
	return budgets, nil
}

// IncrementSpent adds amount to the spent total of the matching budget
func (r *BudgetRepository) IncrementSpent(ctx context.Context, userID uint64, category string, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ? AND category = ?", userID, category).
		UpdateColumns(map[string]any{
			"spent_amount": gorm.Expr("spent_amount + ?", amount),
			"updated_at":   r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.storeError("incrementing budget spent", result.Error, userID, category)
	}

	matched := result.RowsAffected > 0
	r.logger.Debug("Budget spent incremented", map[string]any{
		"user_id":  userID,
		"category": category,
		"amount":   amount.String(),
		"matched":  matched,
	})
	return matched, nil
}
