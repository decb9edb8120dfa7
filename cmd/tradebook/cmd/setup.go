package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Record journey parameters",
	Long: `Record the journey start date, the hourly salary of the job being
replaced and the account starting balance.

Example:
  tradebook setup --start-date 2025-01-06 --salary 28.50 --balance 5000`,
	RunE: runSetup,
}

var (
	setupStartDate string
	setupSalary    float64
	setupBalance   float64
)

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVar(&setupStartDate, "start-date", "", "journey start date (YYYY-MM-DD, default today)")
	setupCmd.Flags().Float64Var(&setupSalary, "salary", 0, "old hourly salary being replaced")
	setupCmd.Flags().Float64Var(&setupBalance, "balance", 0, "account starting balance")
}

func runSetup(cmd *cobra.Command, args []string) error {
	if setupStartDate == "" {
		setupStartDate = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", setupStartDate); err != nil {
		return fmt.Errorf("start date: %w", err)
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.SetAccount(setupStartDate, setupSalary, setupBalance); err != nil {
		return fmt.Errorf("save setup: %w", err)
	}

	fmt.Printf("✓ Journey starts %s\n", setupStartDate)
	fmt.Printf("  Old salary: $%.2f/hr\n", setupSalary)
	fmt.Printf("  Starting balance: $%.2f\n", setupBalance)
	return nil
}
