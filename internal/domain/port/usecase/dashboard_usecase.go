package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// DashboardUseCase computes aggregate views across ledger, budgets and goals
type DashboardUseCase interface {
	// Summary returns totals and the net amount available
	Summary(ctx context.Context, userID uint64) (entity.DashboardSummary, error)

	// MonthlyTrend returns income and expenses for the last `months` calendar
	// months, oldest first
	MonthlyTrend(ctx context.Context, userID uint64, months int) ([]entity.MonthlyTrendEntry, error)

	// CategoryBreakdown returns spending per budget category
	CategoryBreakdown(ctx context.Context, userID uint64) (entity.CategoryBreakdown, error)

	// MonthlySummary returns averages, best month and savings rate over the
	// default trend window
	MonthlySummary(ctx context.Context, userID uint64) (entity.MonthlySummary, error)
}
