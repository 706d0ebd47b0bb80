package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrendMonths is the default number of months in a monthly trend
const TrendMonths = 7

// DashboardSummary is the headline view of a user's finances
type DashboardSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	GoalSavings      decimal.Decimal
	TransactionCount int64
}

// NewDashboardSummary combines ledger totals with the sum of goal savings
func NewDashboardSummary(totals LedgerTotals, goalSavings decimal.Decimal) DashboardSummary {
	return DashboardSummary{
		TotalIncome:      totals.TotalIncome,
		TotalExpenses:    totals.TotalExpenses,
		GoalSavings:      goalSavings,
		TransactionCount: totals.TransactionCount,
	}
}

// NetAmount is income minus expenses minus money set aside for goals
func (s DashboardSummary) NetAmount() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses).Sub(s.GoalSavings)
}

// MonthlyTrendEntry holds the income and expenses of one calendar month
type MonthlyTrendEntry struct {
	Label    string // "Jan".."Dec"
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net is income minus expenses for the month
func (e MonthlyTrendEntry) Net() decimal.Decimal {
	return e.Income.Sub(e.Expenses)
}

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	From time.Time
	To   time.Time
}

// TrendWindow is the date range covered by the `months` calendar months
// ending at the month of ref
func TrendWindow(ref time.Time, months int) DateRange {
	if months <= 0 {
		months = 1
	}
	start := trendStart(ref, months)
	end := start.AddDate(0, months, -1)
	return DateRange{From: start, To: end}
}

func trendStart(ref time.Time, months int) time.Time {
	return time.Date(ref.Year(), ref.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyTrend buckets transactions into the `months` calendar months ending at
// the month of ref, oldest first. Months without transactions are zero and
// transactions outside the window are ignored.
func MonthlyTrend(transactions []*Transaction, ref time.Time, months int) []MonthlyTrendEntry {
	if months <= 0 {
		return []MonthlyTrendEntry{}
	}

	start := trendStart(ref, months)
	entries := make([]MonthlyTrendEntry, months)
	index := make(map[monthKey]int, months)
	for i := range entries {
		m := start.AddDate(0, i, 0)
		entries[i] = MonthlyTrendEntry{
			Label:    m.Month().String()[:3],
			Year:     m.Year(),
			Month:    m.Month(),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		index[monthKey{m.Year(), m.Month()}] = i
	}

	for _, txn := range transactions {
		i, ok := index[monthKey{txn.Date.Year(), txn.Date.Month()}]
		if !ok {
			continue
		}
		switch txn.Kind {
		case KindIncome:
			entries[i].Income = entries[i].Income.Add(txn.Amount)
		case KindExpense:
			entries[i].Expenses = entries[i].Expenses.Add(txn.Amount)
		}
	}

	return entries
}

type monthKey struct {
	year  int
	month time.Month
}

// CategorySpend is the amount spent against one budget category
type CategorySpend struct {
	Category string
	Spent    decimal.Decimal
}

// CategoryShare is a category's portion of the total spent across budgets
type CategoryShare struct {
	Category string
	Spent    decimal.Decimal
	Percent  float64
}

// CategoryBreakdown lists spending per budget category, plus a proportional
// view that leaves out categories with nothing spent.
type CategoryBreakdown struct {
	Entries      []CategorySpend
	Proportional []CategoryShare
}

// NewCategoryBreakdown builds the breakdown from a user's budgets
func NewCategoryBreakdown(budgets []*Budget) CategoryBreakdown {
	breakdown := CategoryBreakdown{
		Entries:      make([]CategorySpend, 0, len(budgets)),
		Proportional: make([]CategoryShare, 0, len(budgets)),
	}

	total := decimal.Zero
	for _, b := range budgets {
		breakdown.Entries = append(breakdown.Entries, CategorySpend{Category: b.Category, Spent: b.SpentAmount})
		if b.SpentAmount.IsPositive() {
			total = total.Add(b.SpentAmount)
		}
	}

	for _, e := range breakdown.Entries {
		if !e.Spent.IsPositive() {
			continue
		}
		breakdown.Proportional = append(breakdown.Proportional, CategoryShare{
			Category: e.Category,
			Spent:    e.Spent,
			Percent:  Percent(e.Spent, total),
		})
	}

	return breakdown
}

// MonthlySummary is a set of statistics over a monthly trend window
type MonthlySummary struct {
	Months          int
	AverageIncome   decimal.Decimal
	AverageExpenses decimal.Decimal
	BestMonth       string // empty when the window has no activity
	BestMonthNet    decimal.Decimal
	SavingsRate     float64
	NetAmount       decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
}

// NewMonthlySummary derives averages and the best month from a trend, and the
// savings rate from the dashboard summary.
func NewMonthlySummary(trend []MonthlyTrendEntry, summary DashboardSummary) MonthlySummary {
	result := MonthlySummary{
		Months:          len(trend),
		AverageIncome:   decimal.Zero,
		AverageExpenses: decimal.Zero,
		BestMonthNet:    decimal.Zero,
		NetAmount:       summary.NetAmount(),
		TotalIncome:     summary.TotalIncome,
		TotalExpenses:   summary.TotalExpenses,
	}
	if len(trend) > 0 {
		income := decimal.Zero
		expenses := decimal.Zero
		best := 0
		for i, e := range trend {
			income = income.Add(e.Income)
			expenses = expenses.Add(e.Expenses)
			// Ties keep the earlier month
			if e.Net().GreaterThan(trend[best].Net()) {
				best = i
			}
		}
		if income.IsPositive() || expenses.IsPositive() {
			result.BestMonth = trend[best].Label
			result.BestMonthNet = trend[best].Net()
		}
		n := decimal.NewFromInt(int64(len(trend)))
		result.AverageIncome = income.Div(n).Round(MaxDecimalPlaces)
		result.AverageExpenses = expenses.Div(n).Round(MaxDecimalPlaces)
	}

	result.SavingsRate = Percent(result.NetAmount, summary.TotalIncome)
	return result
}
