package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show behavioral insights",
	Long: `Flag recurring execution patterns: winners cut early, profits
roundtripped to losses, DCA performance and the current streak.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	trades := snap.Trades()
	guide := stats.ComputeGuide(trades)
	stats.PrintInsights(os.Stdout, stats.ComputeInsights(trades, guide))
	return nil
}
