package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "expenses",
		Short:   "Personal ledger over monthly flat files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newExpenseCommand())
	rootCmd.AddCommand(newIncomeCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newViewCommand())

	return rootCmd
}
