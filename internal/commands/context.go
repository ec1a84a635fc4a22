package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/expenses-dev/expenses/internal/config"
	"github.com/expenses-dev/expenses/internal/gitops"
	"github.com/expenses-dev/expenses/internal/store"
)

// defaultDataDir resolves the data directory flag default, preferring the
// EXPENSES_DATA_DIR environment override.
func defaultDataDir() string {
	env, err := config.FromEnv()
	if err == nil && env.DataDir != "" {
		return env.DataDir
	}
	return "."
}

// openRepository loads the data directory's configuration and builds the
// Repository for it. A missing expenses.yaml falls back to defaults so the
// tool works in any directory without an explicit init.
func openRepository(dataDir string) (*store.Repository, *config.Config, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("se")
	} else if err != nil {
		return nil, nil, err
	}

	env, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	if env.Country != "" {
		cfg.Country = env.Country
	}

	repo, err := store.NewRepository(absDir, cfg.Country)
	if err != nil {
		return nil, nil, err
	}
	return repo, cfg, nil
}

// commitAdd commits a written ledger file when auto-commit is enabled.
func commitAdd(cfg *config.Config, dataDir, file string) {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(dataDir) {
		return
	}
	msg := "add: update " + file
	if _, err := gitops.CommitFiles(dataDir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail, file); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
	}
}
