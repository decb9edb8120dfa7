// Package config loads tradebook configuration from YAML or JSON files with
// environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tradebook configuration.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Account AccountConfig `json:"account" yaml:"account"`
	Export  ExportConfig  `json:"export" yaml:"export"`

	// WithdrawThreshold is the daily profit above which the CLI nudges the
	// trader to take money off the table.
	WithdrawThreshold float64 `json:"withdraw_threshold" yaml:"withdraw_threshold"`
}

// StorageConfig selects where the snapshot lives.
type StorageConfig struct {
	Type     string `json:"type" yaml:"type"` // "json" or "sqlite"
	JSONPath string `json:"json_path,omitempty" yaml:"json_path,omitempty"`
	DBPath   string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// AccountConfig contains journey initialization defaults. These seed the
// snapshot on first run; the setup command overrides them.
type AccountConfig struct {
	StartDate       string  `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	OldHourlySalary float64 `json:"old_hourly_salary" yaml:"old_hourly_salary"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
}

// ExportConfig contains export destinations.
type ExportConfig struct {
	CSVPath string `json:"csv_path" yaml:"csv_path"`
	OrgPath string `json:"org_path,omitempty" yaml:"org_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON, then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the configuration from path when it exists, otherwise the
// defaults with environment overrides applied. A .env file next to the
// binary is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return LoadFromFile(path)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML or JSON by extension.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "json":
		if c.Storage.JSONPath == "" {
			return fmt.Errorf("storage.json_path required for json storage")
		}
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite storage")
		}
	default:
		return fmt.Errorf("storage.type must be 'json' or 'sqlite'")
	}
	if c.Account.OldHourlySalary < 0 {
		return fmt.Errorf("account.old_hourly_salary must not be negative")
	}
	if c.Account.StartingBalance < 0 {
		return fmt.Errorf("account.starting_balance must not be negative")
	}
	if c.WithdrawThreshold < 0 {
		return fmt.Errorf("withdraw_threshold must not be negative")
	}
	return nil
}

// applyEnv overrides file values from the environment.
func (c *Config) applyEnv() {
	setString(&c.Storage.Type, "TRADEBOOK_STORAGE")
	setString(&c.Storage.JSONPath, "TRADEBOOK_JSON_PATH")
	setString(&c.Storage.DBPath, "TRADEBOOK_DB_PATH")
	setString(&c.Export.CSVPath, "TRADEBOOK_CSV_PATH")
	setString(&c.Export.OrgPath, "TRADEBOOK_ORG_PATH")
	setFloat(&c.WithdrawThreshold, "TRADEBOOK_WITHDRAW_THRESHOLD")
	setFloat(&c.Account.OldHourlySalary, "TRADEBOOK_OLD_SALARY")
	setFloat(&c.Account.StartingBalance, "TRADEBOOK_STARTING_BALANCE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = f
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type:     "json",
			JSONPath: "./tradebook.json",
			DBPath:   "./tradebook.db",
		},
		Export: ExportConfig{
			CSVPath: "./trades.csv",
		},
		WithdrawThreshold: 1000,
	}
}
