package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/ledger"
)

func newCheckCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every ledger file parses and holds its invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")

	return cmd
}

func runCheck(cmd *cobra.Command, dataDir string) error {
	repo, _, err := openRepository(dataDir)
	if err != nil {
		return err
	}

	files, err := repo.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		cmd.Println("No ledger files found")
		return nil
	}

	problems := 0
	for _, name := range files {
		entries, err := repo.ReadFile(name)
		if err != nil {
			cmd.Printf("%s: %v\n", name, err)
			problems++
			continue
		}
		verrs := ledger.Validate(entries)
		for _, ve := range verrs {
			cmd.Printf("%s: %v\n", name, ve)
		}
		problems += len(verrs)
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found in %d file(s)", problems, len(files))
	}
	cmd.Printf("Checked %d file(s), no problems\n", len(files))
	return nil
}
