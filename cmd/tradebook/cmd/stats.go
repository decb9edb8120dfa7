package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the performance report",
	Long: `Compute win rate, profit factor, streaks, hold times and breakdowns
by emotion, trade type and DCA over the whole journey.

Example:
  tradebook stats`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	stats.PrintStatistics(os.Stdout, stats.Compute(snap))
	return nil
}
