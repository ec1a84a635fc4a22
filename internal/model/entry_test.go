package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/currency"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func line(t *testing.T, desc string, amount int64) EntryLine {
	t.Helper()
	l, err := NewEntryLine(desc, amount)
	require.NoError(t, err)
	return l
}

func TestNewEntryLine(t *testing.T) {
	l, err := NewEntryLine("Groceries", 100)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", l.Description)
	assert.Equal(t, int64(100), l.Amount)
}

func TestNewEntryLine_ZeroAmount(t *testing.T) {
	_, err := NewEntryLine("Groceries", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntryLine_NegativeAmount(t *testing.T) {
	_, err := NewEntryLine("Groceries", -5)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntryLine_EmptyDescription(t *testing.T) {
	_, err := NewEntryLine("", 100)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntryLine_DescriptionWithSpaces(t *testing.T) {
	_, err := NewEntryLine("lunch at restaurant", 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "colons")
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(date(2025, 4, 5), "Food", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100), line(t, "Snacks", 20)})
	require.NoError(t, err)
	assert.Equal(t, "Food", e.Category)
	assert.Equal(t, Expense, e.Type)
	assert.Equal(t, currency.SEK, e.Currency)
	assert.Equal(t, int64(120), e.Total())
}

func TestNewEntry_NoLines(t *testing.T) {
	_, err := NewEntry(date(2025, 4, 5), "Food", Expense, currency.SEK, nil)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntry_EmptyCategory(t *testing.T) {
	_, err := NewEntry(date(2025, 4, 5), "", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100)})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntry_InvalidLineRejected(t *testing.T) {
	_, err := NewEntry(date(2025, 4, 5), "Food", Expense, currency.SEK,
		[]EntryLine{{Description: "Groceries", Amount: 0}})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntry_IncomeMixedDescriptions(t *testing.T) {
	_, err := NewEntry(date(2025, 4, 5), "Salary", Income, currency.SEK,
		[]EntryLine{line(t, "Monthly:Salary", 2000), line(t, "Bonus", 500)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewEntry_IncomeUniformDescriptions(t *testing.T) {
	e, err := NewEntry(date(2025, 4, 5), "Salary", Income, currency.SEK,
		[]EntryLine{line(t, "Monthly:Salary", 2000), line(t, "Monthly:Salary", 500)})
	require.NoError(t, err)
	assert.Len(t, e.Lines, 2)
}

func TestNewEntry_ExpenseMixedDescriptionsAllowed(t *testing.T) {
	_, err := NewEntry(date(2025, 4, 5), "Food", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100), line(t, "Snacks", 20)})
	assert.NoError(t, err)
}

func TestDay_TruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2025, 4, 5, 18, 30, 12, 99, loc)
	assert.Equal(t, date(2025, 4, 5), Day(in))
}

func TestNewEntry_NormalizesDate(t *testing.T) {
	e, err := NewEntry(time.Date(2025, 4, 5, 13, 45, 0, 0, time.UTC), "Food", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100)})
	require.NoError(t, err)
	assert.Equal(t, date(2025, 4, 5), e.Date)
}

func TestSameDay(t *testing.T) {
	a, err := NewEntry(date(2025, 4, 5), "Food", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100)})
	require.NoError(t, err)
	b, err := NewEntry(date(2025, 4, 5), "Transport", Expense, currency.SEK,
		[]EntryLine{line(t, "Bus", 30)})
	require.NoError(t, err)
	c, err := NewEntry(date(2025, 4, 6), "Food", Expense, currency.SEK,
		[]EntryLine{line(t, "Groceries", 100)})
	require.NoError(t, err)

	assert.True(t, a.SameDay(b))
	assert.False(t, a.SameDay(c))
}
