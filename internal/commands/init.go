package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/config"
	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var country string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a data directory for ledger files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, country, useGit)
		},
	}

	cmd.Flags().StringVar(&country, "country", "se", "country code for ledger files (se, es)")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize git versioning and auto-commit adds")

	return cmd
}

func runInit(dir, country string, useGit bool) error {
	cur, err := currency.ForCountry(country)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default(country)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if useGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		hash, err := gitops.CommitAll(dir, "init: expenses data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized %s ledger at %s (%s)\n", cur.Code(), dir, hash)
		return nil
	}

	fmt.Printf("Initialized %s ledger at %s\n", cur.Code(), dir)
	return nil
}
