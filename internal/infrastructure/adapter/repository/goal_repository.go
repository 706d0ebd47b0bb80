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

// GoalRepository implements GoalRepository interface using GORM
type GoalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGoalRepository creates a new GoalRepository instance
func NewGoalRepository(db *gorm.DB, logger coreport.Logger) *GoalRepository {
	return &GoalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func goalModelToEntity(m *model.Goal) *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount.Round(entity.MaxDecimalPlaces),
		CurrentAmount: m.CurrentAmount.Round(entity.MaxDecimalPlaces),
		Deadline:      entity.TruncateToDate(m.Deadline),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *GoalRepository) handleDatabaseError(operation string, err error, userID, goalID uint64) error {
	mapped := r.errorClassifier.MapError(operation, err, errs.ErrGoalNotFound)
	if errs.IsNotFoundError(mapped) {
		r.logger.Debug("Goal not found", map[string]any{
			"user_id": userID,
			"goal_id": goalID,
		})
		return mapped
	}

	r.logger.Error("Goal query failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"goal_id":   goalID,
		"error":     err.Error(),
	})
	return mapped
}

// Create saves a new goal and sets its ID
func (r *GoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	m := model.Goal{
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      entity.TruncateToDate(goal.Deadline),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
	if result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m); result.Error != nil {
		return r.handleDatabaseError("creating goal", result.Error, goal.UserID, 0)
	}

	goal.ID = m.ID
	return nil
}

// ListByUser returns the user's goals, oldest first
func (r *GoalRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Goal, error) {
	var rows []model.Goal
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing goals", result.Error, userID, 0)
	}

	goals := make([]*entity.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, goalModelToEntity(&rows[i]))
	}
	return goals, nil
}

// GetByID retrieves a goal owned by the user
func (r *GoalRepository) GetByID(ctx context.Context, userID, goalID uint64) (*entity.Goal, error) {
	var m model.Goal
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", goalID, userID).First(&m)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting goal", result.Error, userID, goalID)
	}
	return goalModelToEntity(&m), nil
}

// Update overwrites the editable fields of a goal owned by goal.UserID
func (r *GoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		UpdateColumns(map[string]any{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"deadline":       entity.TruncateToDate(goal.Deadline),
			"updated_at":     goal.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating goal", result.Error, goal.UserID, goal.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Goal not found during update", map[string]any{
			"user_id": goal.UserID,
			"goal_id": goal.ID,
		})
		return errs.ErrGoalNotFound
	}
	return nil
}

// SumCurrent totals the current amount of all the user's goals
func (r *GoalRepository) SumCurrent(ctx context.Context, userID uint64) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).Model(&model.Goal{}).
		Select("COALESCE(SUM(current_amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, r.handleDatabaseError("summing goals", result.Error, userID, 0)
	}
	return row.Total.Round(entity.MaxDecimalPlaces), nil
}
