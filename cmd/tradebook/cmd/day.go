package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Inspect and annotate journey days",
	Long: `Inspect a journey day or record the hours worked on it.

Examples:
  tradebook day show 12
  tradebook day hours 12 3.5`,
}

var dayShowCmd = &cobra.Command{
	Use:   "show <day>",
	Short: "Show a day's trades and totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayShow,
}

var dayHoursCmd = &cobra.Command{
	Use:   "hours <day> <hours>",
	Short: "Record hours worked on a day",
	Args:  cobra.ExactArgs(2),
	RunE:  runDayHours,
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(dayShowCmd)
	dayCmd.AddCommand(dayHoursCmd)
}

func runDayShow(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day: %w", err)
	}
	dayIndex, err := dayIndexArg(day)
	if err != nil {
		return err
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}

	d := snap.Days[dayIndex]
	fmt.Printf("Day %d: $%.2f profit, %.1f hours, %d trades\n", day, d.Profit, d.Hours, len(d.Trades))
	if len(d.Trades) > 0 {
		fmt.Println()
		fmt.Println(journal.FormatTradesOrg(dayIndex, d.Trades))
	}
	return nil
}

func runDayHours(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day: %w", err)
	}
	dayIndex, err := dayIndexArg(day)
	if err != nil {
		return err
	}

	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("hours: %w", err)
	}
	if hours < 0 {
		return fmt.Errorf("hours must not be negative, got %v", hours)
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.SaveDayHours(dayIndex, hours); err != nil {
		return fmt.Errorf("save hours: %w", err)
	}

	fmt.Printf("✓ Day %d: %.1f hours\n", day, hours)
	return nil
}
