package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that the model
// tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Budget lookups on every recorded expense
		name: "idx_transactions_expense_category",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_expense_category
			ON transactions (user_id, category) WHERE type = 'expense'`,
	},
	{
		// Trend windows scan by date
		name: "idx_transactions_date_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_date_brin
			ON transactions USING BRIN (date) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_goals_user_deadline",
		sql: `CREATE INDEX IF NOT EXISTS idx_goals_user_deadline
			ON goals (user_id, deadline)`,
	},
}

// CreateAdvancedIndexes creates the PostgreSQL indexes. Other dialects skip
// this step.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Info("Skipping PostgreSQL indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)
	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.createPerformanceTweaks(ctx)
	return nil
}

// createPerformanceTweaks applies non-critical table settings
func (m *AdvancedIndexManager) createPerformanceTweaks(ctx context.Context) {
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
