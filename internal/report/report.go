// Package report aggregates one month of parsed entries into per-category
// totals for display.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expenses-dev/expenses/internal/model"
)

// CategoryTotal is the spend in one expense category and its share of the
// month's expenses.
type CategoryTotal struct {
	Category string
	Total    int64
	Share    decimal.Decimal // percentage, 0-100
}

// Summary aggregates one monthly file.
type Summary struct {
	Categories   []CategoryTotal
	ExpenseTotal int64
	IncomeTotal  int64
}

// Net returns income minus expenses.
func (s Summary) Net() int64 {
	return s.IncomeTotal - s.ExpenseTotal
}

// Summarize folds entries into per-category expense totals and an income
// total. Categories are sorted by descending spend, ties by name.
func Summarize(entries []model.Entry) Summary {
	var s Summary
	byCategory := make(map[string]int64)

	for _, e := range entries {
		switch e.Type {
		case model.Expense:
			byCategory[e.Category] += e.Total()
			s.ExpenseTotal += e.Total()
		case model.Income:
			s.IncomeTotal += e.Total()
		}
	}

	total := decimal.NewFromInt(s.ExpenseTotal)
	hundred := decimal.NewFromInt(100)
	for category, amount := range byCategory {
		ct := CategoryTotal{Category: category, Total: amount}
		if s.ExpenseTotal > 0 {
			ct.Share = decimal.NewFromInt(amount).Mul(hundred).Div(total).Round(1)
		}
		s.Categories = append(s.Categories, ct)
	}

	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Total != s.Categories[j].Total {
			return s.Categories[i].Total > s.Categories[j].Total
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})
	return s
}
