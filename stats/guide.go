package stats

import (
	"github.com/rustyeddy/tradebook/trade"
)

const (
	// takeProfitDiscount shaves the average roundtrip peak so the
	// recommended exit stays below the level trades historically reversed at.
	takeProfitDiscount = 0.7
	// stopDiscount tightens the stop below the average realized loss.
	stopDiscount = 0.6
	// defaultStopPercent is a conservative placeholder used before any
	// losing trade exists; it is not derived from data.
	defaultStopPercent = 15
	// guideMinTrades is the minimum history for recommendations.
	guideMinTrades = 3
)

// Guide is the derived take-profit/stop-loss recommendation set, computed
// from realized roundtrip and loss behavior rather than live market data.
type Guide struct {
	OptimalTakeProfit float64 // percent
	RecommendedStop   float64 // percent, positive
	AvgRoundtripPeak  float64 // mean peak percent over roundtripped trades
	RoundtripCount    int

	DCATrades      int
	DCAOptimalExit float64
	DCAHelps       bool
}

// ComputeGuide derives recommendations from the chronological trade list.
// Nil when fewer than three trades exist.
func ComputeGuide(trades []trade.Record) *Guide {
	if len(trades) < guideMinTrades {
		return nil
	}

	g := &Guide{}

	var (
		peakSum float64

		winPctSum float64
		winners   int

		lossPctSum float64
		losers     int

		dcaWinPctSum    float64
		dcaWinners      int
		dcaLossPctSum   float64
		dcaLosers       int
		nonDCAWinPctSum float64
		nonDCAWinners   int

		dcaExitSum float64
	)

	for _, t := range trades {
		if t.Roundtripped {
			g.RoundtripCount++
			peakSum += t.PotentialProfitPercent
		}
		if t.IsDCA {
			g.DCATrades++
		}

		switch {
		case t.ActualProfit > 0:
			winners++
			winPctSum += t.ActualProfitPercent
			if t.IsDCA {
				dcaWinners++
				dcaWinPctSum += t.ActualProfitPercent
				dcaExitSum += t.ActualProfitPercent
			} else {
				nonDCAWinners++
				nonDCAWinPctSum += t.ActualProfitPercent
			}
		case t.ActualProfit < 0:
			losers++
			lossPctSum += -t.ActualProfitPercent
			if t.IsDCA {
				dcaLosers++
				dcaLossPctSum += -t.ActualProfitPercent
			}
		}
	}

	if g.RoundtripCount > 0 {
		g.AvgRoundtripPeak = peakSum / float64(g.RoundtripCount)
	}

	avgWinPct := 0.0
	if winners > 0 {
		avgWinPct = winPctSum / float64(winners)
	}
	avgLossPct := 0.0
	if losers > 0 {
		avgLossPct = lossPctSum / float64(losers)
	}

	if g.RoundtripCount > 0 && g.AvgRoundtripPeak > 0 {
		g.OptimalTakeProfit = g.AvgRoundtripPeak * takeProfitDiscount
	} else {
		g.OptimalTakeProfit = avgWinPct
	}

	if losers > 0 {
		g.RecommendedStop = avgLossPct * stopDiscount
	} else {
		g.RecommendedStop = defaultStopPercent
	}

	if dcaWinners > 0 {
		g.DCAOptimalExit = dcaExitSum / float64(dcaWinners)
	} else {
		g.DCAOptimalExit = g.OptimalTakeProfit
	}

	dcaAvgWinPct := 0.0
	if dcaWinners > 0 {
		dcaAvgWinPct = dcaWinPctSum / float64(dcaWinners)
	}
	nonDCAAvgWinPct := 0.0
	if nonDCAWinners > 0 {
		nonDCAAvgWinPct = nonDCAWinPctSum / float64(nonDCAWinners)
	}
	dcaAvgLossPct := 0.0
	if dcaLosers > 0 {
		dcaAvgLossPct = dcaLossPctSum / float64(dcaLosers)
	}

	// DCA is judged beneficial if it improves either side of the ledger:
	// bigger average wins than single-entry trades, or smaller average
	// losses than the overall book.
	g.DCAHelps = dcaAvgWinPct > nonDCAAvgWinPct || dcaAvgLossPct < avgLossPct

	return g
}
