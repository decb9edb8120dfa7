package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/portfolio"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A daily trading journal with statistics and execution coaching",
	Long: `Tradebook is a trading journal for a 365-day journey out of the day job.

It provides tools for:
  - Recording multi-leg trades with entry and exit fills
  - Daily profit and hours tracking
  - Win-rate, streak and hold-time statistics
  - An execution guide derived from your own history
  - Balance and withdrawal accounting

Complete documentation is available at https://github.com/rustyeddy/tradebook`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML or JSON)")
}

// loadConfig resolves the effective configuration for this invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openBook builds the configured store and wraps it in a Book. The caller
// owns the book and must Close it.
func openBook() (*portfolio.Book, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var store portfolio.Store
	if cfg.Storage.Type == "sqlite" {
		store, err = journal.NewSQLite(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
	} else {
		store = journal.NewFile(cfg.Storage.JSONPath)
	}

	return portfolio.NewBook(store), cfg, nil
}
