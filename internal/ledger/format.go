package ledger

import (
	"strconv"
	"strings"

	"github.com/expenses-dev/expenses/internal/model"
)

// CounterAccount is the fixed balancing line written into every entry.
const CounterAccount = "* Assets:Checking"

// DateFormat is the entry header date layout.
const DateFormat = "2006/01/02"

const (
	indent = "  "

	// descColumn is the total width reserved for an expense description,
	// measured from after the two-space indent to the currency token.
	descColumn = 39

	// incomeGap is the exact run of spaces between the counter-account
	// and the currency token on income amount rows.
	incomeGap = 22
)

// Serialize renders entries to the on-disk .dat text, byte-exact. Entries
// are written in the order given; Apply guarantees ascending date order.
// Every entry, including the last, is followed by one blank line.
func Serialize(entries []model.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		writeEntry(&b, e)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e model.Entry) {
	b.WriteString(e.Date.Format(DateFormat))
	b.WriteByte(' ')
	b.WriteString(e.Category)
	b.WriteByte('\n')

	code := e.Currency.Code()
	switch e.Type {
	case model.Expense:
		for _, l := range e.Lines {
			pad := descColumn - len(l.Description)
			if pad < 1 {
				pad = 1 // keeps over-long descriptions parseable, at the cost of alignment
			}
			b.WriteString(indent)
			b.WriteString(l.Description)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(code)
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(l.Amount, 10))
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(CounterAccount)
		b.WriteByte('\n')
	case model.Income:
		for _, l := range e.Lines {
			b.WriteString(indent)
			b.WriteString(CounterAccount)
			b.WriteString(strings.Repeat(" ", incomeGap))
			b.WriteString(code)
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(l.Amount, 10))
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(e.Lines[0].Description)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
}
