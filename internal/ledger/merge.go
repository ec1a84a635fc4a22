package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/expenses-dev/expenses/internal/model"
)

// ErrConflictingEntry is wrapped by merge-time invariant violations.
var ErrConflictingEntry = errors.New("conflicting entry")

// Apply folds candidate into existing and returns a new, date-ordered slice.
// A same-date Expense with the same category merges; other Expenses insert as
// new entries. A same-date Income merges only when its description matches
// the existing income entry's; any other same-date Income collision fails,
// since a file holds at most one income entry per date. Neither input slice
// nor its entries are mutated.
func Apply(existing []model.Entry, candidate model.Entry) ([]model.Entry, error) {
	merged := false
	out := make([]model.Entry, 0, len(existing)+1)

	for _, e := range existing {
		if merged || !e.SameDay(candidate) || e.Type != candidate.Type {
			out = append(out, e)
			continue
		}

		switch candidate.Type {
		case model.Expense:
			if e.Category != candidate.Category {
				out = append(out, e)
				continue
			}
		case model.Income:
			if e.Lines[0].Description != candidate.Lines[0].Description {
				return nil, fmt.Errorf("%w: income for %s already recorded as %q",
					ErrConflictingEntry, e.Date.Format(DateFormat), e.Lines[0].Description)
			}
		}

		if e.Currency != candidate.Currency {
			return nil, fmt.Errorf("%w: cannot merge %s lines into a %s entry",
				ErrConflictingEntry, candidate.Currency.Code(), e.Currency.Code())
		}

		combined := e
		combined.Lines = append(append([]model.EntryLine{}, e.Lines...), candidate.Lines...)
		out = append(out, combined)
		merged = true
	}

	if !merged {
		out = append(out, candidate)
	}

	// Stable: same-date entries keep their on-file order, a merged entry
	// keeps its position.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
