package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/expenses-dev/expenses/internal/currency"
	"github.com/expenses-dev/expenses/internal/ledger"
	"github.com/expenses-dev/expenses/internal/model"
)

// Repository routes entries to monthly, per-country .dat files under a data
// directory and runs the read-parse-merge-serialize-write cycle for each add.
// Nothing is cached between operations; every add re-reads the whole file.
type Repository struct {
	dataDir string
	country string
	cur     currency.Currency
}

// NewRepository creates a Repository for a data directory and country code.
func NewRepository(dataDir, country string) (*Repository, error) {
	cur, err := currency.ForCountry(country)
	if err != nil {
		return nil, err
	}
	return &Repository{dataDir: dataDir, country: country, cur: cur}, nil
}

// Currency returns the currency implied by the repository's country.
func (r *Repository) Currency() currency.Currency {
	return r.cur
}

// Filename returns the monthly file name for a date, e.g. "se-2025-04.dat".
func (r *Repository) Filename(date time.Time) string {
	return fmt.Sprintf("%s-%04d-%02d.dat", r.country, date.Year(), int(date.Month()))
}

// Add merges entry into its monthly file. The file is rewritten in full; no
// partial write happens because serialization only runs after a valid merge.
// Returns the file name written.
func (r *Repository) Add(entry model.Entry) (string, error) {
	if entry.Currency != r.cur {
		return "", fmt.Errorf("currency %s does not match country %s (expects %s)",
			entry.Currency.Code(), r.country, r.cur.Code())
	}

	name := r.Filename(entry.Date)
	path := filepath.Join(r.dataDir, name)

	entries, err := r.readPath(path)
	if err != nil {
		return "", err
	}

	merged, err := ledger.Apply(entries, entry)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(ledger.Serialize(merged)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

// ReadMonth parses one monthly file. A missing file is an empty ledger.
func (r *Repository) ReadMonth(year int, month time.Month) ([]model.Entry, error) {
	return r.ReadFile(fmt.Sprintf("%s-%04d-%02d.dat", r.country, year, int(month)))
}

// ReadFile parses a .dat file by name within the data directory.
func (r *Repository) ReadFile(name string) ([]model.Entry, error) {
	return r.readPath(filepath.Join(r.dataDir, name))
}

func (r *Repository) readPath(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	entries, err := ledger.Parse(string(data), r.cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Files lists the repository's .dat files for this country, sorted by name,
// which for the monthly naming scheme is chronological order.
func (r *Repository) Files() ([]string, error) {
	dirents, err := os.ReadDir(r.dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing data dir: %w", err)
	}

	var names []string
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ".dat") {
			continue
		}
		if !strings.HasPrefix(name, r.country+"-") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DataDir returns the repository's data directory.
func (r *Repository) DataDir() string {
	return r.dataDir
}
