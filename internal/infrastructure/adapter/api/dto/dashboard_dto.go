package dto

import (
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// DashboardResponse is the body of GET /api/dashboard
type DashboardResponse struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	GoalSavings      float64 `json:"goalSavings"`
	NetAmount        float64 `json:"netAmount"`
	TransactionCount int64   `json:"transactionCount"`
}

// NewDashboardResponse maps the summary
func NewDashboardResponse(s entity.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalIncome:      Amount(s.TotalIncome),
		TotalExpenses:    Amount(s.TotalExpenses),
		GoalSavings:      Amount(s.GoalSavings),
		NetAmount:        Amount(s.NetAmount()),
		TransactionCount: s.TransactionCount,
	}
}

// TrendEntryResponse is one month of the trend
type TrendEntryResponse struct {
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	MonthNumber int     `json:"monthNumber"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Net         float64 `json:"net"`
}

// NewTrendResponse maps the trend entries in order
func NewTrendResponse(entries []entity.MonthlyTrendEntry) []TrendEntryResponse {
	list := make([]TrendEntryResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, TrendEntryResponse{
			Month:       e.Label,
			Year:        e.Year,
			MonthNumber: int(e.Month),
			Income:      Amount(e.Income),
			Expenses:    Amount(e.Expenses),
			Net:         Amount(e.Net()),
		})
	}
	return list
}

// CategorySpendResponse is one budget category's spending
type CategorySpendResponse struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
}

// CategoryShareResponse is one category's share of all spending
type CategoryShareResponse struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Percent  float64 `json:"percent"`
}

// CategoryBreakdownResponse is the body of GET /api/dashboard/categories
type CategoryBreakdownResponse struct {
	Entries      []CategorySpendResponse `json:"entries"`
	Proportional []CategoryShareResponse `json:"proportional"`
}

// NewCategoryBreakdownResponse maps the breakdown
func NewCategoryBreakdownResponse(b entity.CategoryBreakdown) CategoryBreakdownResponse {
	resp := CategoryBreakdownResponse{
		Entries:      make([]CategorySpendResponse, 0, len(b.Entries)),
		Proportional: make([]CategoryShareResponse, 0, len(b.Proportional)),
	}
	for _, e := range b.Entries {
		resp.Entries = append(resp.Entries, CategorySpendResponse{Category: e.Category, Spent: Amount(e.Spent)})
	}
	for _, s := range b.Proportional {
		resp.Proportional = append(resp.Proportional, CategoryShareResponse{
			Category: s.Category,
			Spent:    Amount(s.Spent),
			Percent:  Percentage(s.Percent),
		})
	}
	return resp
}

// MonthlySummaryResponse is the body of GET /api/dashboard/summary
type MonthlySummaryResponse struct {
	Months          int     `json:"months"`
	AverageIncome   float64 `json:"averageIncome"`
	AverageExpenses float64 `json:"averageExpenses"`
	BestMonth       string  `json:"bestMonth"`
	BestMonthNet    float64 `json:"bestMonthNet"`
	SavingsRate     float64 `json:"savingsRate"`
	NetAmount       float64 `json:"netAmount"`
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
}

// NewMonthlySummaryResponse maps the monthly statistics. A window without
// activity reports its best month as "N/A".
func NewMonthlySummaryResponse(s entity.MonthlySummary) MonthlySummaryResponse {
	best := s.BestMonth
	if best == "" {
		best = "N/A"
	}
	return MonthlySummaryResponse{
		Months:          s.Months,
		AverageIncome:   Amount(s.AverageIncome),
		AverageExpenses: Amount(s.AverageExpenses),
		BestMonth:       best,
		BestMonthNet:    Amount(s.BestMonthNet),
		SavingsRate:     Percentage(s.SavingsRate),
		NetAmount:       Amount(s.NetAmount),
		TotalIncome:     Amount(s.TotalIncome),
		TotalExpenses:   Amount(s.TotalExpenses),
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	InUse    int    `json:"dbConnectionsInUse"`
	Open     int    `json:"dbConnectionsOpen"`
}
