package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expenses-dev/expenses/internal/currency"
)

// ErrInvalidEntry is wrapped by all construction-time validation failures.
var ErrInvalidEntry = errors.New("invalid entry")

// EntryType distinguishes money going out from money coming in.
type EntryType string

const (
	Expense EntryType = "expense"
	Income  EntryType = "income"
)

// EntryLine is one amount row within an entry. The description is a
// colon-joined token ("Monthly:Salary") and never contains raw spaces.
type EntryLine struct {
	Description string
	Amount      int64
}

// NewEntryLine validates and builds an EntryLine.
func NewEntryLine(description string, amount int64) (EntryLine, error) {
	if amount <= 0 {
		return EntryLine{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidEntry, amount)
	}
	if description == "" {
		return EntryLine{}, fmt.Errorf("%w: description cannot be empty", ErrInvalidEntry)
	}
	if strings.ContainsRune(description, ' ') {
		return EntryLine{}, fmt.Errorf("%w: description %q cannot contain spaces, use colons to separate words", ErrInvalidEntry, description)
	}
	return EntryLine{Description: description, Amount: amount}, nil
}

// Entry is one ledger record: an Expense groups lines under a date and
// category, an Income groups lines sharing one description under a date.
// All lines inherit the entry's currency.
type Entry struct {
	Date     time.Time // day granularity, midnight UTC
	Category string
	Type     EntryType
	Currency currency.Currency
	Lines    []EntryLine
}

// NewEntry validates and builds an Entry.
func NewEntry(date time.Time, category string, typ EntryType, cur currency.Currency, lines []EntryLine) (Entry, error) {
	if len(lines) == 0 {
		return Entry{}, fmt.Errorf("%w: entry must have at least one line", ErrInvalidEntry)
	}
	if category == "" {
		return Entry{}, fmt.Errorf("%w: category cannot be empty", ErrInvalidEntry)
	}
	for _, l := range lines {
		if _, err := NewEntryLine(l.Description, l.Amount); err != nil {
			return Entry{}, err
		}
	}
	if typ == Income {
		for _, l := range lines[1:] {
			if l.Description != lines[0].Description {
				return Entry{}, fmt.Errorf("%w: income entries must have the same description for all lines", ErrInvalidEntry)
			}
		}
	}
	return Entry{
		Date:     Day(date),
		Category: category,
		Type:     typ,
		Currency: cur,
		Lines:    lines,
	}, nil
}

// Day truncates a time to its calendar day at midnight UTC, the canonical
// form stored on entries.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Total sums the entry's line amounts.
func (e Entry) Total() int64 {
	var total int64
	for _, l := range e.Lines {
		total += l.Amount
	}
	return total
}

// SameDay reports whether two entries fall on the same calendar date.
func (e Entry) SameDay(other Entry) bool {
	return e.Date.Equal(other.Date)
}
