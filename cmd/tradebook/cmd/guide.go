package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show take-profit and stop recommendations",
	Long: `Derive an execution guide from your own history: where winners peaked,
where roundtrips turned, and whether DCA is paying for itself.

Needs at least 3 recorded trades.`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	stats.PrintGuide(os.Stdout, stats.ComputeGuide(snap.Trades()))
	return nil
}
