package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Manage withdrawals",
	Long: `Record cash taken out of the account, correct mistakes and list the
withdrawal history.

Examples:
  tradebook withdraw add 1200
  tradebook withdraw add 500 --date 2025-03-14
  tradebook withdraw delete <withdrawal-id>
  tradebook withdraw list`,
}

var withdrawAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record a withdrawal",
	Args:  cobra.ExactArgs(1),
	RunE:  runWithdrawAdd,
}

var withdrawDeleteCmd = &cobra.Command{
	Use:   "delete <withdrawal-id>",
	Short: "Delete a withdrawal",
	Args:  cobra.ExactArgs(1),
	RunE:  runWithdrawDelete,
}

var withdrawListCmd = &cobra.Command{
	Use:   "list",
	Short: "List withdrawals and the balance summary",
	Args:  cobra.NoArgs,
	RunE:  runWithdrawList,
}

var withdrawDate string

func init() {
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.AddCommand(withdrawAddCmd)
	withdrawCmd.AddCommand(withdrawDeleteCmd)
	withdrawCmd.AddCommand(withdrawListCmd)

	withdrawAddCmd.Flags().StringVar(&withdrawDate, "date", "", "withdrawal date (YYYY-MM-DD, default today)")
}

func runWithdrawAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	date := withdrawDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date: %w", err)
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	w, err := book.AddWithdrawal(amount, date)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Withdrew $%.2f on %s (id %s)\n", w.Amount, w.Date, w.ID)
	return nil
}

func runWithdrawDelete(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.DeleteWithdrawal(args[0]); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted withdrawal %s\n", args[0])
	return nil
}

func runWithdrawList(cmd *cobra.Command, args []string) error {
	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	if len(snap.Withdrawals) == 0 {
		fmt.Println("No withdrawals recorded.")
	}
	for _, w := range snap.Withdrawals {
		fmt.Printf("%s  %-10s  $%.2f\n", w.ID, w.Date, w.Amount)
	}

	fmt.Println()
	stats.PrintBalance(os.Stdout, snap)
	return nil
}
