package ledger

import (
	"fmt"

	"github.com/expenses-dev/expenses/internal/model"
)

// ValidationError describes a single file-level invariant violation.
type ValidationError struct {
	Invariant   int
	Date        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Date, e.Description)
}

// Validate enforces file-level invariants on a parsed entry sequence:
//
//  1. entries are in ascending date order
//  2. at most one income entry per date
//  3. no two expense entries share both date and category
//
// Apply preserves all three; Validate exists to check files edited by hand.
func Validate(entries []model.Entry) []ValidationError {
	var errs []ValidationError

	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Date:        entries[i].Date.Format(DateFormat),
				Description: fmt.Sprintf("entry out of order, follows %s", entries[i-1].Date.Format(DateFormat)),
			})
		}
	}

	incomeDates := make(map[string]bool)
	expenseKeys := make(map[string]bool)
	for _, e := range entries {
		day := e.Date.Format(DateFormat)
		switch e.Type {
		case model.Income:
			if incomeDates[day] {
				errs = append(errs, ValidationError{
					Invariant:   2,
					Date:        day,
					Description: "more than one income entry for this date",
				})
			}
			incomeDates[day] = true
		case model.Expense:
			key := day + "\x00" + e.Category
			if expenseKeys[key] {
				errs = append(errs, ValidationError{
					Invariant:   3,
					Date:        day,
					Description: fmt.Sprintf("duplicate expense category %q", e.Category),
				})
			}
			expenseKeys[key] = true
		}
	}

	return errs
}
