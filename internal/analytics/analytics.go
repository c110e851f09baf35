// Package analytics derives dashboard aggregates from transaction lists.
// Everything here is a pure function over already-loaded data; no state
// is stored and no storage is touched.
package analytics

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/models"
)

// MonthlySummary holds the income/expense totals for one calendar month.
type MonthlySummary struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
	SavingsRate  float64 `json:"savings_rate"`
}

// TrendPoint is one month's entry in a trend series.
type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryBreakdown holds one category's share of a type total.
type CategoryBreakdown struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Color        string  `json:"color"`
	Total        float64 `json:"total"`
	Percentage   float64 `json:"percentage"`
}

// inMonth reports whether a transaction counts toward the given YYYY-MM
// month key. Soft-deleted rows never count, whatever the caller loaded.
func inMonth(t models.Transaction, month string) bool {
	return !t.Deleted && strings.HasPrefix(t.Date, month)
}

// Summarize computes the income/expense totals and balance for one
// month. The savings rate is the balance as a percentage of income,
// zero when there is no income.
func Summarize(transactions []models.Transaction, month string) MonthlySummary {
	summary := MonthlySummary{Month: month}

	for _, t := range transactions {
		if !inMonth(t, month) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			summary.TotalExpense += t.Amount
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	if summary.TotalIncome > 0 {
		summary.SavingsRate = summary.Balance / summary.TotalIncome * 100
	}
	return summary
}

// Trend produces the trailing-months trend series ending at now's
// month, oldest first. The result always holds exactly months entries;
// months without transactions appear zero-filled, never skipped.
func Trend(transactions []models.Transaction, now time.Time, months int) []TrendPoint {
	if months < 1 {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		// First of the month avoids day-of-month normalization surprises.
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := m.Format(models.MonthLayout)

		point := TrendPoint{Month: key}
		for _, t := range transactions {
			if !inMonth(t, key) {
				continue
			}
			switch t.Type {
			case models.TransactionTypeIncome:
				point.Income += t.Amount
			case models.TransactionTypeExpense:
				point.Expense += t.Amount
			}
		}
		points = append(points, point)
	}
	return points
}

// Breakdown groups one type's transactions by category and computes
// each category's share of the type total, largest first. Month is
// optional; empty means all time. Category names and colors resolve
// from the category list, falling back to the transaction's denormalized
// name snapshot when the category is gone.
func Breakdown(
	transactions []models.Transaction,
	categories []models.Category,
	transactionType models.TransactionType,
	month string,
) []CategoryBreakdown {
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[string]*CategoryBreakdown)
	var typeTotal float64

	for _, t := range transactions {
		if t.Deleted || t.Type != transactionType {
			continue
		}
		if month != "" && !strings.HasPrefix(t.Date, month) {
			continue
		}

		entry, ok := totals[t.CategoryID]
		if !ok {
			entry = &CategoryBreakdown{
				CategoryID:   t.CategoryID,
				CategoryName: t.CategoryName,
			}
			if c, found := byID[t.CategoryID]; found {
				entry.CategoryName = c.Name
				entry.Color = c.Color
			}
			totals[t.CategoryID] = entry
		}
		entry.Total += t.Amount
		typeTotal += t.Amount
	}

	result := make([]CategoryBreakdown, 0, len(totals))
	for _, entry := range totals {
		if typeTotal > 0 {
			entry.Percentage = entry.Total / typeTotal * 100
		}
		result = append(result, *entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].CategoryID < result[j].CategoryID
	})
	return result
}
