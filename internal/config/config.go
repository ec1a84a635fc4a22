package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file kept at the root of a data directory.
const FileName = "expenses.yaml"

// Config represents the expenses.yaml configuration.
type Config struct {
	Country string    `yaml:"country"`
	Git     GitConfig `yaml:"git"`
}

// GitConfig controls git versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Env holds process-environment overrides, processed with the EXPENSES_
// prefix (EXPENSES_DATA_DIR, EXPENSES_COUNTRY).
type Env struct {
	DataDir string `envconfig:"DATA_DIR"`
	Country string `envconfig:"COUNTRY"`
}

// FromEnv reads the environment overrides.
func FromEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("expenses", &env); err != nil {
		return Env{}, fmt.Errorf("processing environment: %w", err)
	}
	return env, nil
}

// Load reads an expenses.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(country string) *Config {
	return &Config{
		Country: country,
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Expenses CLI",
			AuthorEmail: "expenses@localhost",
		},
	}
}
