package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/tui"
)

func newViewCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a ledger file in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runView(dataDir, name)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

func runView(dataDir, name string) error {
	repo, _, err := openRepository(dataDir)
	if err != nil {
		return err
	}

	if name == "" {
		files, err := repo.Files()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no ledger files in %s", repo.DataDir())
		}

		// Most recent month first.
		options := make([]huh.Option[string], 0, len(files))
		for i := len(files) - 1; i >= 0; i-- {
			options = append(options, huh.NewOption(files[i], files[i]))
		}

		picker := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Ledger file").
				Options(options...).
				Value(&name),
		))
		if err := picker.Run(); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(filepath.Join(repo.DataDir(), name))
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	return tui.Run(name, string(data))
}
