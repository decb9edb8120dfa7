package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Show journey progress against the old job",
	Long: `Compare trading income against the job being replaced: effective
hourly rate, annual projection and days until trading overtakes the old
salary. Includes the balance ledger.`,
	Args: cobra.NoArgs,
	RunE: runJourney,
}

func init() {
	rootCmd.AddCommand(journeyCmd)
}

func runJourney(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	stats.PrintJourney(os.Stdout, stats.ComputeJourney(snap))
	fmt.Println()
	stats.PrintBalance(os.Stdout, snap)
	return nil
}
