// Package stats derives performance metrics, execution recommendations and
// behavioral insights from a portfolio snapshot. Everything here is a pure
// function of its inputs, recomputed in full on every read.
package stats

import (
	"math"
	"strings"

	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

// EmotionTags is the fixed set of tokens matched (case-insensitive substring)
// against a trade's emotions text. Best-effort tagging, not a taxonomy: one
// trade may land in several buckets.
var EmotionTags = []string{"fomo", "revenge", "calm"}

// Bucket is a per-partition summary used by the emotion, trade-type and DCA
// breakdowns.
type Bucket struct {
	Count     int
	Wins      int
	WinRate   float64
	AvgProfit float64
}

// Statistics is the cross-trade aggregate view of a snapshot.
type Statistics struct {
	TotalTrades int
	Winners     int
	Losers      int
	WinRate     float64

	AvgWin         float64 // mean winner profit
	AvgLoss        float64 // mean loser profit, absolute value
	AvgWinPercent  float64
	AvgLossPercent float64 // absolute value

	// ProfitFactor is AvgWin/AvgLoss; +Inf when there are winners but no
	// losers, 0 when there are no winners.
	ProfitFactor    float64
	Expectancy      float64
	AvgTradePercent float64

	MaxWinStreak  int
	MaxLossStreak int
	// CurrentStreak is signed: positive for a run of winners ending at the
	// most recent trade, negative for losers.
	CurrentStreak int

	// Hold-time means in minutes over trades with a known hold time; the
	// corresponding Samples count is 0 when the subset is empty.
	AvgHoldMins     float64
	HoldSamples     int
	AvgWinHoldMins  float64
	WinHoldSamples  int
	AvgLossHoldMins float64
	LossHoldSamples int

	// Emotions holds only buckets that matched at least one trade.
	Emotions map[string]Bucket
	ByType   map[trade.Type]Bucket
	DCA      Bucket
	NonDCA   Bucket

	RoundtripCount    int
	TotalRoundtripped float64
	TotalMissedProfit float64
}

// Compute aggregates every trade in the snapshot. Nil when no trades exist.
func Compute(snap *portfolio.Snapshot) *Statistics {
	return ComputeTrades(snap.Trades())
}

// ComputeTrades is Compute over an already flattened, chronologically ordered
// trade list.
func ComputeTrades(trades []trade.Record) *Statistics {
	if len(trades) == 0 {
		return nil
	}

	st := &Statistics{
		TotalTrades: len(trades),
		Emotions:    make(map[string]Bucket),
		ByType:      make(map[trade.Type]Bucket),
	}

	var (
		sumWin, sumLoss       float64
		sumWinPct, sumLossPct float64
		sumProfit, sumPct     float64
	)

	for _, t := range trades {
		sumProfit += t.ActualProfit
		sumPct += t.ActualProfitPercent

		switch {
		case t.ActualProfit > 0:
			st.Winners++
			sumWin += t.ActualProfit
			sumWinPct += t.ActualProfitPercent
		case t.ActualProfit < 0:
			st.Losers++
			sumLoss += -t.ActualProfit
			sumLossPct += -t.ActualProfitPercent
		}

		if t.Roundtripped {
			st.RoundtripCount++
			st.TotalRoundtripped += math.Abs(t.ActualProfit)
		}
		st.TotalMissedProfit += t.MissedProfit
	}

	st.WinRate = float64(st.Winners) / float64(st.TotalTrades) * 100
	st.Expectancy = sumProfit / float64(st.TotalTrades)
	st.AvgTradePercent = sumPct / float64(st.TotalTrades)

	if st.Winners > 0 {
		st.AvgWin = sumWin / float64(st.Winners)
		st.AvgWinPercent = sumWinPct / float64(st.Winners)
	}
	if st.Losers > 0 {
		st.AvgLoss = sumLoss / float64(st.Losers)
		st.AvgLossPercent = sumLossPct / float64(st.Losers)
	}

	switch {
	case st.AvgLoss > 0:
		st.ProfitFactor = st.AvgWin / st.AvgLoss
	case st.AvgWin > 0:
		st.ProfitFactor = math.Inf(1)
	default:
		st.ProfitFactor = 0
	}

	st.MaxWinStreak, st.MaxLossStreak = maxStreaks(trades)
	st.CurrentStreak = currentStreak(trades)

	st.AvgHoldMins, st.HoldSamples = holdMean(trades, func(t trade.Record) bool { return true })
	st.AvgWinHoldMins, st.WinHoldSamples = holdMean(trades, func(t trade.Record) bool { return t.ActualProfit > 0 })
	st.AvgLossHoldMins, st.LossHoldSamples = holdMean(trades, func(t trade.Record) bool { return t.ActualProfit < 0 })

	for _, tag := range EmotionTags {
		b := bucket(trades, func(t trade.Record) bool {
			return strings.Contains(strings.ToLower(t.Emotions), tag)
		})
		if b.Count > 0 {
			st.Emotions[tag] = b
		}
	}

	for _, tt := range []trade.Type{trade.Scalp, trade.Swing, trade.Hold} {
		tt := tt
		b := bucket(trades, func(t trade.Record) bool { return t.Type == tt })
		if b.Count > 0 {
			st.ByType[tt] = b
		}
	}

	st.DCA = bucket(trades, func(t trade.Record) bool { return t.IsDCA })
	st.NonDCA = bucket(trades, func(t trade.Record) bool { return !t.IsDCA })

	return st
}

func bucket(trades []trade.Record, match func(trade.Record) bool) Bucket {
	var b Bucket
	sum := 0.0
	for _, t := range trades {
		if !match(t) {
			continue
		}
		b.Count++
		sum += t.ActualProfit
		if t.ActualProfit > 0 {
			b.Wins++
		}
	}
	if b.Count > 0 {
		b.WinRate = float64(b.Wins) / float64(b.Count) * 100
		b.AvgProfit = sum / float64(b.Count)
	}
	return b
}

// maxStreaks finds the longest consecutive same-sign runs in chronological
// order. A zero-profit trade breaks both runs.
func maxStreaks(trades []trade.Record) (maxWin, maxLoss int) {
	win, loss := 0, 0
	for _, t := range trades {
		switch {
		case t.ActualProfit > 0:
			win++
			loss = 0
		case t.ActualProfit < 0:
			loss++
			win = 0
		default:
			win, loss = 0, 0
		}
		if win > maxWin {
			maxWin = win
		}
		if loss > maxLoss {
			maxLoss = loss
		}
	}
	return maxWin, maxLoss
}

// currentStreak walks backward from the most recent trade, counting while the
// profit sign matches. The sign of the result matches the most recent trade.
func currentStreak(trades []trade.Record) int {
	if len(trades) == 0 {
		return 0
	}

	last := trades[len(trades)-1].ActualProfit
	if last == 0 {
		return 0
	}

	streak := 0
	for i := len(trades) - 1; i >= 0; i-- {
		p := trades[i].ActualProfit
		if last > 0 && p > 0 {
			streak++
		} else if last < 0 && p < 0 {
			streak--
		} else {
			break
		}
	}
	return streak
}

func holdMean(trades []trade.Record, match func(trade.Record) bool) (float64, int) {
	sum, n := 0.0, 0
	for _, t := range trades {
		if !t.HasHoldTime() || !match(t) {
			continue
		}
		sum += float64(t.HoldTimeMins)
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
