package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/model"
)

func TestValidate_CleanLedger(t *testing.T) {
	entries := []model.Entry{
		expense(t, date(2025, 4, 1), "Food", currency.SEK, "Groceries", 100),
		expense(t, date(2025, 4, 5), "Food", currency.SEK, "Groceries", 80),
		income(t, date(2025, 4, 25), "Salary", currency.SEK, "Monthly:Salary", 2000),
	}
	assert.Empty(t, Validate(entries))
}

func TestValidate_OutOfOrder(t *testing.T) {
	entries := []model.Entry{
		expense(t, date(2025, 4, 5), "Food", currency.SEK, "Groceries", 100),
		expense(t, date(2025, 4, 1), "Food", currency.SEK, "Groceries", 80),
	}
	errs := Validate(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
}

func TestValidate_TwoIncomeEntriesOneDate(t *testing.T) {
	entries := []model.Entry{
		income(t, date(2025, 4, 5), "Salary", currency.SEK, "Monthly:Salary", 2000),
		income(t, date(2025, 4, 5), "Bonus", currency.SEK, "Monthly:Bonus", 500),
	}
	errs := Validate(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidate_DuplicateExpenseDateCategory(t *testing.T) {
	entries := []model.Entry{
		expense(t, date(2025, 4, 5), "Food", currency.SEK, "Groceries", 100),
		expense(t, date(2025, 4, 5), "Food", currency.SEK, "Snacks", 20),
	}
	errs := Validate(entries)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), "Food")
}

func TestValidate_SameDateDifferentCategories(t *testing.T) {
	entries := []model.Entry{
		expense(t, date(2025, 4, 5), "Food", currency.SEK, "Groceries", 100),
		expense(t, date(2025, 4, 5), "Transport", currency.SEK, "Bus", 30),
		income(t, date(2025, 4, 5), "Salary", currency.SEK, "Monthly:Salary", 2000),
	}
	assert.Empty(t, Validate(entries))
}
