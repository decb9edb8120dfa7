package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "json", cfg.Storage.Type)
	assert.Equal(t, 1000.0, cfg.WithdrawThreshold)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:   "unknown storage type",
			mutate: func(c *Config) { c.Storage.Type = "redis" },
			errMsg: "storage.type must be 'json' or 'sqlite'",
		},
		{
			name:   "json without path",
			mutate: func(c *Config) { c.Storage.JSONPath = "" },
			errMsg: "storage.json_path required",
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.Storage.Type = "sqlite"
				c.Storage.DBPath = ""
			},
			errMsg: "storage.db_path required",
		},
		{
			name:   "negative salary",
			mutate: func(c *Config) { c.Account.OldHourlySalary = -1 },
			errMsg: "old_hourly_salary",
		},
		{
			name:   "negative threshold",
			mutate: func(c *Config) { c.WithdrawThreshold = -5 },
			errMsg: "withdraw_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
storage:
  type: sqlite
  db_path: /tmp/journal.db
account:
  old_hourly_salary: 30
  starting_balance: 2500
withdraw_threshold: 750
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.DBPath)
	assert.Equal(t, 30.0, cfg.Account.OldHourlySalary)
	assert.Equal(t, 750.0, cfg.WithdrawThreshold)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	js := `{"storage": {"type": "json", "json_path": "book.json"}, "withdraw_threshold": 500}`
	require.NoError(t, os.WriteFile(path, []byte(js), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "book.json", cfg.Storage.JSONPath)
	assert.Equal(t, 500.0, cfg.WithdrawThreshold)
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  type: redis\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADEBOOK_STORAGE", "sqlite")
	t.Setenv("TRADEBOOK_DB_PATH", "/data/book.db")
	t.Setenv("TRADEBOOK_WITHDRAW_THRESHOLD", "1500")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/data/book.db", cfg.Storage.DBPath)
	assert.Equal(t, 1500.0, cfg.WithdrawThreshold)
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Default()
	want.Account.StartingBalance = 4000
	require.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
