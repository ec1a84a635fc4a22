package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/ledger"
	"github.com/expenses-dev/expenses/internal/model"
)

func newAddCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Capture an entry interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, cfg, err := openRepository(dataDir)
			if err != nil {
				return err
			}
			entry, err := captureEntry(repo.Currency())
			if err != nil {
				return err
			}
			return saveEntry(repo, cfg, entry)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

// captureEntry walks the user through the forms that build one entry.
func captureEntry(cur currency.Currency) (model.Entry, error) {
	var (
		typ      = string(model.Expense)
		dateStr  = model.Day(time.Now()).Format(ledger.DateFormat)
		category string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Entry type").
				Options(
					huh.NewOption("Expense", string(model.Expense)),
					huh.NewOption("Income", string(model.Income)),
				).
				Value(&typ),

			huh.NewInput().
				Title("Date").
				Description("YYYY/MM/DD").
				Value(&dateStr).
				Validate(func(s string) error {
					_, err := time.Parse(ledger.DateFormat, strings.TrimSpace(s))
					return err
				}),

			huh.NewInput().
				Title("Category").
				Value(&category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return model.Entry{}, err
	}

	date, err := time.Parse(ledger.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return model.Entry{}, err
	}
	category = strings.TrimSpace(category)
	entryType := model.EntryType(typ)

	var lines []model.EntryLine
	if entryType == model.Expense {
		lines, err = captureExpenseLines(cur.Symbol())
	} else {
		lines, err = captureIncomeLines(cur.Symbol())
	}
	if err != nil {
		return model.Entry{}, err
	}

	return model.NewEntry(date, category, entryType, cur, lines)
}

func captureExpenseLines(symbol string) ([]model.EntryLine, error) {
	var lines []model.EntryLine
	for {
		var desc, amountStr string
		more := false

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Description("Colon-joined words, e.g. Lunch:Restaurant").
					Value(&desc).
					Validate(validateDescription),

				huh.NewInput().
					Title(fmt.Sprintf("Amount (%s)", symbol)).
					Value(&amountStr).
					Validate(validateAmount),

				huh.NewConfirm().
					Title("Add another line?").
					Affirmative("Yes").
					Negative("No").
					Value(&more),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}

		line, err := model.NewEntryLine(strings.TrimSpace(desc), mustAmount(amountStr))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)

		if !more {
			return lines, nil
		}
	}
}

func captureIncomeLines(symbol string) ([]model.EntryLine, error) {
	var desc string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Description("Shared by all income lines, e.g. Monthly:Salary").
				Value(&desc).
				Validate(validateDescription),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	desc = strings.TrimSpace(desc)

	var lines []model.EntryLine
	for {
		var amountStr string
		more := false

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Amount (%s)", symbol)).
					Value(&amountStr).
					Validate(validateAmount),

				huh.NewConfirm().
					Title("Add another amount?").
					Affirmative("Yes").
					Negative("No").
					Value(&more),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}

		line, err := model.NewEntryLine(desc, mustAmount(amountStr))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)

		if !more {
			return lines, nil
		}
	}
}

func validateDescription(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if strings.ContainsRune(s, ' ') {
		return fmt.Errorf("no spaces, use colons to separate words")
	}
	return nil
}

func validateAmount(s string) error {
	amount, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// mustAmount converts a form-validated amount string.
func mustAmount(s string) int64 {
	amount, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return amount
}
