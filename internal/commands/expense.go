package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/config"
	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/ledger"
	"github.com/expenses-dev/expenses/internal/model"
	"github.com/expenses-dev/expenses/internal/store"
)

func newExpenseCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "expense <date> <category> <amount> <description>",
		Short: "Record an expense line",
		Long: `Record one expense line in the monthly ledger file.

The date is YYYY/MM/DD ("today" is accepted), the description is a
colon-joined token like Lunch:Restaurant. A same-date expense with the same
category is merged into the existing entry.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(model.Expense, args, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

func newIncomeCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "income <date> <category> <amount> <description>",
		Short: "Record income lines",
		Long: `Record income in the monthly ledger file.

The amount may be a comma-separated list (1000,2000) to record several lines
sharing one description. A file holds at most one income entry per date;
further income for that date must carry the same description to merge.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(model.Income, args, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

func runOneShot(typ model.EntryType, args []string, dataDir string) error {
	repo, cfg, err := openRepository(dataDir)
	if err != nil {
		return err
	}

	entry, err := buildEntry(typ, args, repo.Currency())
	if err != nil {
		return err
	}
	return saveEntry(repo, cfg, entry)
}

// buildEntry turns <date> <category> <amount> <description> args into a
// validated entry carrying the data directory's currency.
func buildEntry(typ model.EntryType, args []string, cur currency.Currency) (model.Entry, error) {
	date, err := parseDay(args[0])
	if err != nil {
		return model.Entry{}, err
	}

	amounts, err := parseAmounts(args[2])
	if err != nil {
		return model.Entry{}, err
	}
	if typ == model.Expense && len(amounts) != 1 {
		return model.Entry{}, fmt.Errorf("expenses take a single amount, got %q", args[2])
	}

	lines := make([]model.EntryLine, 0, len(amounts))
	for _, amount := range amounts {
		line, err := model.NewEntryLine(args[3], amount)
		if err != nil {
			return model.Entry{}, err
		}
		lines = append(lines, line)
	}

	return model.NewEntry(date, args[1], typ, cur, lines)
}

func saveEntry(repo *store.Repository, cfg *config.Config, entry model.Entry) error {
	file, err := repo.Add(entry)
	if err != nil {
		return err
	}

	commitAdd(cfg, repo.DataDir(), file)
	fmt.Printf("Recorded %s %q (%d %s) in %s\n",
		entry.Type, entry.Category, entry.Total(), entry.Currency.Code(), file)
	return nil
}

func parseDay(arg string) (time.Time, error) {
	if strings.EqualFold(arg, "today") {
		return model.Day(time.Now()), nil
	}
	date, err := time.Parse(ledger.DateFormat, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY/MM/DD: %w", arg, err)
	}
	return date, nil
}

func parseAmounts(arg string) ([]int64, error) {
	parts := strings.Split(arg, ",")
	amounts := make([]int64, 0, len(parts))
	for _, p := range parts {
		amount, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q, want a positive integer", p)
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}
