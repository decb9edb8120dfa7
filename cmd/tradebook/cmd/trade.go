package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and manage trades",
	Long: `Record multi-leg trades against a journey day, or delete them.

Legs are given as price:size[:date[:time]], repeatable:

  tradebook trade add --day 12 --token SOL \
      --entry 100:500:2025-03-01:09:30 \
      --entry 90:500:2025-03-01:10:15 \
      --exit 120:1000:2025-03-01:14:00 \
      --max 150 --min 85 --reason "breakout retest"

  tradebook trade delete --day 12 <trade-id>`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade on a journey day",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade from a journey day",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	tradeDay      int
	tradeToken    string
	tradeType     string
	tradeEntries  []string
	tradeExits    []string
	tradeMax      float64
	tradeMin      float64
	tradeReason   string
	tradeEmotions string
	tradeLessons  string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	tradeCmd.PersistentFlags().IntVar(&tradeDay, "day", 0, "journey day number, 1-365 (required)")
	tradeCmd.MarkPersistentFlagRequired("day")

	tradeAddCmd.Flags().StringVar(&tradeToken, "token", "", "token symbol, e.g. SOL")
	tradeAddCmd.Flags().StringVar(&tradeType, "type", "scalp", "trade type: scalp, swing or hold")
	tradeAddCmd.Flags().StringArrayVar(&tradeEntries, "entry", nil, "entry leg price:size[:date[:time]] (repeatable)")
	tradeAddCmd.Flags().StringArrayVar(&tradeExits, "exit", nil, "exit leg price:size[:date[:time]] (repeatable)")
	tradeAddCmd.Flags().Float64Var(&tradeMax, "max", 0, "highest price seen while holding (required)")
	tradeAddCmd.Flags().Float64Var(&tradeMin, "min", 0, "lowest price seen while holding (required)")
	tradeAddCmd.Flags().StringVar(&tradeReason, "reason", "", "why the trade was taken")
	tradeAddCmd.Flags().StringVar(&tradeEmotions, "emotions", "", "emotional state, e.g. fomo, revenge, calm")
	tradeAddCmd.Flags().StringVar(&tradeLessons, "lessons", "", "lessons learned")
	tradeAddCmd.MarkFlagRequired("entry")
	tradeAddCmd.MarkFlagRequired("exit")
	tradeAddCmd.MarkFlagRequired("max")
	tradeAddCmd.MarkFlagRequired("min")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	dayIndex, err := dayIndexArg(tradeDay)
	if err != nil {
		return err
	}

	draft := trade.Draft{
		Token:    strings.ToUpper(tradeToken),
		Type:     trade.Type(tradeType),
		Reason:   tradeReason,
		Emotions: tradeEmotions,
		Lessons:  tradeLessons,
	}
	if !trade.ValidType(draft.Type) {
		return fmt.Errorf("unknown trade type %q", tradeType)
	}

	if draft.Entries, err = parseLegs(tradeEntries); err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	if draft.Exits, err = parseLegs(tradeExits); err != nil {
		return fmt.Errorf("exit: %w", err)
	}

	draft.MaxPrice = &tradeMax
	draft.MinPrice = &tradeMin

	book, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	rec, err := book.AddTrade(dayIndex, draft)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("trade needs at least one filled entry and exit leg")
	}

	fmt.Println(journal.FormatTradeOrg(dayIndex, *rec))

	snap, err := book.Snapshot()
	if err != nil {
		return err
	}
	day := snap.Days[dayIndex]
	fmt.Printf("Day %d profit: $%.2f\n", tradeDay, day.Profit)
	if portfolio.SuggestWithdrawal(day, cfg.WithdrawThreshold) {
		fmt.Printf("💰 Day profit is above $%.0f. Consider a withdrawal:\n", cfg.WithdrawThreshold)
		fmt.Printf("  tradebook withdraw add %.2f\n", day.Profit)
	}
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	dayIndex, err := dayIndexArg(tradeDay)
	if err != nil {
		return err
	}

	book, _, err := openBook()
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.DeleteTrade(dayIndex, args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("✓ Deleted trade %s from day %d\n", args[0], tradeDay)
	return nil
}

func dayIndexArg(day int) (int, error) {
	if day < 1 || day > portfolio.YearDays {
		return 0, fmt.Errorf("day must be between 1 and %d, got %d", portfolio.YearDays, day)
	}
	return day - 1, nil
}

// parseLegs parses price:size[:date[:time]] values. The time part keeps its
// own colon, so each value splits into at most four fields.
func parseLegs(specs []string) ([]trade.Leg, error) {
	legs := make([]trade.Leg, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 4)
		if len(parts) < 2 {
			return nil, fmt.Errorf("leg %q: want price:size[:date[:time]]", spec)
		}

		price, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("leg %q: price: %w", spec, err)
		}
		size, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("leg %q: size: %w", spec, err)
		}

		leg := trade.Leg{Price: price, Size: size}
		if len(parts) > 2 {
			leg.Date = parts[2]
		}
		if len(parts) > 3 {
			leg.Time = parts[3]
		}
		legs = append(legs, leg)
	}
	return legs, nil
}
