package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

const rule50 = "--------------------------------------------------"

// PrintStatistics writes the human-readable performance report.
func PrintStatistics(w io.Writer, st *Statistics) {
	if st == nil {
		fmt.Fprintln(w, "No trades recorded yet.")
		return
	}

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trading Performance")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Trades:         %d (%d wins / %d losses)\n", st.TotalTrades, st.Winners, st.Losers)
	fmt.Fprintf(w, "Win Rate:       %.1f%%\n", st.WinRate)
	fmt.Fprintf(w, "Profit Factor:  %s\n", formatFactor(st.ProfitFactor))
	fmt.Fprintf(w, "Expectancy:     %.2f per trade\n", st.Expectancy)
	fmt.Fprintf(w, "Avg Trade:      %.2f%%\n", st.AvgTradePercent)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wins & Losses")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "Avg Win:        %.2f (%.2f%%)\n", st.AvgWin, st.AvgWinPercent)
	fmt.Fprintf(w, "Avg Loss:       %.2f (%.2f%%)\n", st.AvgLoss, st.AvgLossPercent)
	fmt.Fprintf(w, "Max Win Streak: %d\n", st.MaxWinStreak)
	fmt.Fprintf(w, "Max Loss Streak:%d\n", st.MaxLossStreak)
	fmt.Fprintf(w, "Current Streak: %+d\n", st.CurrentStreak)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hold Times")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "All Trades:     %s\n", formatHoldMean(st.AvgHoldMins, st.HoldSamples))
	fmt.Fprintf(w, "Winners:        %s\n", formatHoldMean(st.AvgWinHoldMins, st.WinHoldSamples))
	fmt.Fprintf(w, "Losers:         %s\n", formatHoldMean(st.AvgLossHoldMins, st.LossHoldSamples))

	if len(st.Emotions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Emotions")
		fmt.Fprintln(w, rule50)
		for _, tag := range EmotionTags {
			if b, ok := st.Emotions[tag]; ok {
				fmt.Fprintf(w, "%-10s %3d trades, %.1f%% win rate\n", tag, b.Count, b.WinRate)
			}
		}
	}

	if len(st.ByType) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Trade Type")
		fmt.Fprintln(w, rule50)
		for _, tt := range []trade.Type{trade.Scalp, trade.Swing, trade.Hold} {
			if b, ok := st.ByType[tt]; ok {
				fmt.Fprintf(w, "%-10s %3d trades, %.1f%% win rate, avg %.2f\n", tt, b.Count, b.WinRate, b.AvgProfit)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "DCA vs Single Entry")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "DCA:        %3d trades, %.1f%% win rate, avg %.2f\n", st.DCA.Count, st.DCA.WinRate, st.DCA.AvgProfit)
	fmt.Fprintf(w, "Single:     %3d trades, %.1f%% win rate, avg %.2f\n", st.NonDCA.Count, st.NonDCA.WinRate, st.NonDCA.AvgProfit)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution Cost")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "Roundtripped:   %d trades, %.2f given back\n", st.RoundtripCount, st.TotalRoundtripped)
	fmt.Fprintf(w, "Missed Profit:  %.2f\n", st.TotalMissedProfit)
}

// PrintGuide writes the execution recommendations.
func PrintGuide(w io.Writer, g *Guide) {
	if g == nil {
		fmt.Fprintln(w, "Not enough history yet: record at least 3 trades for recommendations.")
		return
	}

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Execution Guide")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Optimal Take Profit:  %.2f%%\n", g.OptimalTakeProfit)
	fmt.Fprintf(w, "Recommended Stop:     %.2f%%\n", g.RecommendedStop)
	if g.RoundtripCount > 0 {
		fmt.Fprintf(w, "Avg Roundtrip Peak:   %.2f%% over %d trades\n", g.AvgRoundtripPeak, g.RoundtripCount)
	}
	if g.DCATrades > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "DCA")
		fmt.Fprintln(w, rule50)
		fmt.Fprintf(w, "DCA Trades:           %d\n", g.DCATrades)
		fmt.Fprintf(w, "DCA Optimal Exit:     %.2f%%\n", g.DCAOptimalExit)
		if g.DCAHelps {
			fmt.Fprintln(w, "Verdict:              DCA is helping")
		} else {
			fmt.Fprintln(w, "Verdict:              DCA is hurting")
		}
	}
}

// PrintInsights writes the behavioral insights, one per line.
func PrintInsights(w io.Writer, insights []Insight) {
	if len(insights) == 0 {
		fmt.Fprintln(w, "No insights yet.")
		return
	}
	for _, ins := range insights {
		fmt.Fprintf(w, "[%s] %s\n", ins.Kind, ins.Text)
	}
}

// PrintJourney writes the old-job comparison report.
func PrintJourney(w io.Writer, j Journey) {
	quote, sub := j.Quote()
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", quote)
	fmt.Fprintf(w, " %s\n", sub)
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Total P&L:        %.2f\n", j.TotalProfit)
	fmt.Fprintf(w, "Profitable Days:  %d\n", j.ProfitableDays)
	fmt.Fprintf(w, "Losing Days:      %d\n", j.LosingDays)
	fmt.Fprintf(w, "$1K+ Days:        %d\n", j.DaysOver1K)
	fmt.Fprintf(w, "Avg Daily Profit: %.2f\n", j.AvgDailyProfit)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Old Job vs Trading")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "Old Rate:         %.2f/hr\n", j.OldHourlyRate)
	fmt.Fprintf(w, "Trading Rate:     %.2f/hr\n", j.EffectiveHourlyRate)
	fmt.Fprintf(w, "Hours Worked:     %.1f over %d days\n", j.TotalHours, j.DaysWorked)
	fmt.Fprintf(w, "Old Salary:       %.2f/yr\n", j.OldYearlyIncome)
	fmt.Fprintf(w, "Projection:       %.2f/yr at %.0f hrs/day\n", j.AnnualProjection, j.ProjectionHours)
	if math.IsInf(j.DaysToSurpassOldJob, 1) {
		fmt.Fprintln(w, "Days to Surpass:  never at current rate")
	} else if j.DaysToSurpassOldJob > 0 {
		fmt.Fprintf(w, "Days to Surpass:  %.0f\n", j.DaysToSurpassOldJob)
	} else {
		fmt.Fprintln(w, "Days to Surpass:  already there")
	}
}

// PrintBalance writes the ledger view of the snapshot.
func PrintBalance(w io.Writer, snap *portfolio.Snapshot) {
	fmt.Fprintln(w, "Balance")
	fmt.Fprintln(w, rule50)
	fmt.Fprintf(w, "Starting Balance: %.2f\n", snap.StartingBalance)
	fmt.Fprintf(w, "Total Profit:     %.2f\n", snap.TotalProfit())
	fmt.Fprintf(w, "Total Withdrawn:  %.2f\n", snap.TotalWithdrawn())
	fmt.Fprintf(w, "Current Balance:  %.2f\n", snap.CurrentBalance())
	fmt.Fprintf(w, "Total Return:     %.2f%%\n", snap.TotalReturnPercent())
}

func formatFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "Inf (no losing trades)"
	}
	return fmt.Sprintf("%.2f", pf)
}

func formatHoldMean(mins float64, samples int) string {
	if samples == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f min over %d trades", mins, samples)
}
