package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/model"
)

func entry(t *testing.T, typ model.EntryType, category string, amounts ...int64) model.Entry {
	t.Helper()
	desc := "Item"
	if typ == model.Income {
		desc = "Monthly:Salary"
	}
	var lines []model.EntryLine
	for _, a := range amounts {
		l, err := model.NewEntryLine(desc, a)
		require.NoError(t, err)
		lines = append(lines, l)
	}
	e, err := model.NewEntry(time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), category, typ, currency.SEK, lines)
	require.NoError(t, err)
	return e
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Categories)
	assert.Zero(t, s.ExpenseTotal)
	assert.Zero(t, s.IncomeTotal)
}

func TestSummarize_Totals(t *testing.T) {
	entries := []model.Entry{
		entry(t, model.Expense, "Food", 100, 50),
		entry(t, model.Expense, "Transport", 50),
		entry(t, model.Income, "Salary", 2000),
	}

	s := Summarize(entries)
	assert.Equal(t, int64(200), s.ExpenseTotal)
	assert.Equal(t, int64(2000), s.IncomeTotal)
	assert.Equal(t, int64(1800), s.Net())
}

func TestSummarize_SharesAndOrder(t *testing.T) {
	entries := []model.Entry{
		entry(t, model.Expense, "Transport", 25),
		entry(t, model.Expense, "Food", 75),
	}

	s := Summarize(entries)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Food", s.Categories[0].Category)
	assert.Equal(t, "75.0", s.Categories[0].Share.StringFixed(1))
	assert.Equal(t, "Transport", s.Categories[1].Category)
	assert.Equal(t, "25.0", s.Categories[1].Share.StringFixed(1))
}

func TestSummarize_MergesCategoriesAcrossEntries(t *testing.T) {
	// Same category on two dates still folds into one row.
	a := entry(t, model.Expense, "Food", 60)
	b := entry(t, model.Expense, "Food", 40)
	b.Date = b.Date.AddDate(0, 0, 1)

	s := Summarize([]model.Entry{a, b})
	require.Len(t, s.Categories, 1)
	assert.Equal(t, int64(100), s.Categories[0].Total)
}

func TestSummarize_TiesSortedByName(t *testing.T) {
	entries := []model.Entry{
		entry(t, model.Expense, "Zoo", 50),
		entry(t, model.Expense, "Art", 50),
	}

	s := Summarize(entries)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Art", s.Categories[0].Category)
	assert.Equal(t, "Zoo", s.Categories[1].Category)
}
