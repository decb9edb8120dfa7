package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the entire journal",
	Long: `Delete all days, trades, withdrawals and journey parameters.

This cannot be undone, so it requires --force:
  tradebook reset --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var resetForce bool

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deleting all journal data")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return fmt.Errorf("refusing to delete all journal data without --force")
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.ResetAll(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("✓ Journal reset")
	return nil
}
