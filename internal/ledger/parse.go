package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/model"
)

// ErrMalformedEntry is wrapped by all parse-time failures.
var ErrMalformedEntry = errors.New("malformed entry")

// Parse decodes .dat file text into entries. Blocks are separated by blank
// lines; lines starting with ';' are comments. Column widths are not checked
// on read, only token structure is. Every currency token must match cur, the
// currency implied by the file's country code.
func Parse(text string, cur currency.Currency) ([]model.Entry, error) {
	var entries []model.Entry
	var block []string
	blockStart := 0

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		e, err := parseEntry(block, cur)
		if err != nil {
			return fmt.Errorf("line %d: %w", blockStart, err)
		}
		entries = append(entries, e)
		block = nil
		return nil
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}
		if len(block) == 0 {
			blockStart = i + 1
		}
		block = append(block, line)
	}
	// A missing trailing blank line is tolerated.
	if err := flush(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntry(lines []string, cur currency.Currency) (model.Entry, error) {
	if len(lines) < 3 {
		return model.Entry{}, fmt.Errorf("%w: entry has %d lines, want header, amount lines and a closing line", ErrMalformedEntry, len(lines))
	}

	date, category, err := parseHeader(lines[0])
	if err != nil {
		return model.Entry{}, err
	}

	last := strings.TrimSpace(lines[len(lines)-1])
	body := lines[1 : len(lines)-1]

	var typ model.EntryType
	var entryLines []model.EntryLine
	switch {
	case last == CounterAccount:
		typ = model.Expense
		entryLines, err = parseExpenseLines(body, cur)
	case strings.HasPrefix(last, CounterAccount):
		return model.Entry{}, fmt.Errorf("%w: unterminated entry, last line is an amount row", ErrMalformedEntry)
	default:
		typ = model.Income
		entryLines, err = parseIncomeLines(body, last, cur)
	}
	if err != nil {
		return model.Entry{}, err
	}

	e, err := model.NewEntry(date, category, typ, cur, entryLines)
	if err != nil {
		return model.Entry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return e, nil
}

func parseHeader(line string) (time.Time, string, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) != 2 {
		return time.Time{}, "", fmt.Errorf("%w: header %q, want \"YYYY/MM/DD category\"", ErrMalformedEntry, line)
	}
	date, err := time.Parse(DateFormat, fields[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid date %q: %v", ErrMalformedEntry, fields[0], err)
	}
	category := strings.TrimSpace(fields[1])
	if category == "" {
		return time.Time{}, "", fmt.Errorf("%w: header %q has no category", ErrMalformedEntry, line)
	}
	return date, category, nil
}

func parseExpenseLines(body []string, cur currency.Currency) ([]model.EntryLine, error) {
	var lines []model.EntryLine
	for _, raw := range body {
		if strings.TrimSpace(raw) == CounterAccount {
			return nil, fmt.Errorf("%w: counter-line before end of entry", ErrMalformedEntry)
		}
		fields := strings.Fields(raw)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: expense line %q, want \"description CUR amount\"", ErrMalformedEntry, strings.TrimSpace(raw))
		}
		amount, err := parseAmount(fields[2])
		if err != nil {
			return nil, err
		}
		if err := checkCurrency(fields[1], cur); err != nil {
			return nil, err
		}
		lines = append(lines, model.EntryLine{Description: fields[0], Amount: amount})
	}
	return lines, nil
}

func parseIncomeLines(body []string, description string, cur currency.Currency) ([]model.EntryLine, error) {
	var lines []model.EntryLine
	for _, raw := range body {
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, CounterAccount) {
			return nil, fmt.Errorf("%w: income line %q, want \"%s CUR amount\"", ErrMalformedEntry, trimmed, CounterAccount)
		}
		fields := strings.Fields(strings.TrimPrefix(trimmed, CounterAccount))
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: income line %q, want \"%s CUR amount\"", ErrMalformedEntry, trimmed, CounterAccount)
		}
		amount, err := parseAmount(fields[1])
		if err != nil {
			return nil, err
		}
		if err := checkCurrency(fields[0], cur); err != nil {
			return nil, err
		}
		lines = append(lines, model.EntryLine{Description: description, Amount: amount})
	}
	return lines, nil
}

func parseAmount(tok string) (int64, error) {
	amount, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not an integer", ErrMalformedEntry, tok)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount %d is not positive", ErrMalformedEntry, amount)
	}
	return amount, nil
}

func checkCurrency(tok string, want currency.Currency) error {
	got, err := currency.ParseToken(tok)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if got != want {
		return fmt.Errorf("%w: currency %s does not match the file currency %s", ErrMalformedEntry, got.Code(), want.Code())
	}
	return nil
}
