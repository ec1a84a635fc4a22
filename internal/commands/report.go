package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/report"
)

const monthFormat = "2006/01"

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	categoryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	totalStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	faintStyle       = lipgloss.NewStyle().Faint(true)
)

func newReportCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "report [YYYY/MM]",
		Short: "Show per-category totals for one month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Now()
			if len(args) > 0 {
				var err error
				month, err = time.Parse(monthFormat, args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, want YYYY/MM: %w", args[0], err)
				}
			}
			return runReport(cmd, dataDir, month)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

func runReport(cmd *cobra.Command, dataDir string, month time.Time) error {
	repo, _, err := openRepository(dataDir)
	if err != nil {
		return err
	}

	entries, err := repo.ReadMonth(month.Year(), month.Month())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Printf("No entries for %s\n", month.Format(monthFormat))
		return nil
	}

	summary := report.Summarize(entries)
	code := repo.Currency().Code()

	var b strings.Builder
	fmt.Fprintln(&b, reportTitleStyle.Render(fmt.Sprintf("%s — %s", month.Format(monthFormat), code)))
	for _, ct := range summary.Categories {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			categoryStyle.Render(fmt.Sprintf("%-20s", ct.Category)),
			fmt.Sprintf("%10d", ct.Total),
			faintStyle.Render(ct.Share.StringFixed(1)+"%"))
	}
	fmt.Fprintf(&b, "  %-20s %s\n", "expenses", totalStyle.Render(fmt.Sprintf("%10d", summary.ExpenseTotal)))
	if summary.IncomeTotal > 0 {
		fmt.Fprintf(&b, "  %-20s %s\n", "income", totalStyle.Render(fmt.Sprintf("%10d", summary.IncomeTotal)))
		fmt.Fprintf(&b, "  %-20s %s\n", "net", totalStyle.Render(fmt.Sprintf("%10d", summary.Net())))
	}

	cmd.Print(b.String())
	return nil
}
