package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

// tr describes a test trade: pct is the realized profit percent on a 1000
// position entered at 100, peak the percent the price topped out above entry.
type tr struct {
	pct      float64
	peak     float64
	dca      bool
	typ      trade.Type
	emotions string
	entryAt  string // clock time on 2024-01-02, optional
	exitAt   string
}

func build(t *testing.T, s tr) trade.Record {
	t.Helper()

	const entry, size = 100.0, 1000.0
	exit := entry * (1 + s.pct/100)

	peak := s.peak
	if peak < s.pct {
		peak = s.pct
	}
	maxPrice := entry * (1 + peak/100)
	minPrice := math.Min(entry, exit) * 0.95

	typ := s.typ
	if typ == "" {
		typ = trade.Scalp
	}

	// A leg only gets a date when the case supplies a clock time, so trades
	// without times have an unknown hold time.
	entryDate, exitDate := "", ""
	if s.entryAt != "" {
		entryDate = "2024-01-02"
	}
	if s.exitAt != "" {
		exitDate = "2024-01-02"
	}

	entries := []trade.Leg{{Price: entry, Size: size, Date: entryDate, Time: s.entryAt}}
	if s.dca {
		entries = []trade.Leg{
			{Price: entry, Size: size / 2, Date: entryDate, Time: s.entryAt},
			{Price: entry, Size: size / 2, Date: entryDate},
		}
	}

	rec, ok := trade.NewRecord(trade.Draft{
		Type:     typ,
		Emotions: s.emotions,
		Entries:  entries,
		Exits:    []trade.Leg{{Price: exit, Size: size, Date: exitDate, Time: s.exitAt}},
		MaxPrice: &maxPrice,
		MinPrice: &minPrice,
	})
	require.True(t, ok)
	return rec
}

func buildAll(t *testing.T, specs []tr) []trade.Record {
	t.Helper()
	out := make([]trade.Record, 0, len(specs))
	for _, s := range specs {
		out = append(out, build(t, s))
	}
	return out
}

func TestComputeNilOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ComputeTrades(nil))
	assert.Nil(t, ComputeTrades([]trade.Record{}))
}

func TestComputeCoreAggregates(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 20}, {pct: 10}, {pct: -10}, {pct: -5}, {pct: 0},
	}))
	require.NotNil(t, st)

	assert.Equal(t, 5, st.TotalTrades)
	assert.Equal(t, 2, st.Winners)
	assert.Equal(t, 2, st.Losers)
	assert.InDelta(t, 40.0, st.WinRate, 1e-9)

	assert.InDelta(t, 150.0, st.AvgWin, 1e-9)
	assert.InDelta(t, 75.0, st.AvgLoss, 1e-9)
	assert.InDelta(t, 15.0, st.AvgWinPercent, 1e-9)
	assert.InDelta(t, 7.5, st.AvgLossPercent, 1e-9)
	assert.InDelta(t, 2.0, st.ProfitFactor, 1e-9)

	assert.InDelta(t, 30.0, st.Expectancy, 1e-9)
	assert.InDelta(t, 3.0, st.AvgTradePercent, 1e-9)
}

func TestProfitFactorSentinels(t *testing.T) {
	t.Parallel()

	onlyWins := ComputeTrades(buildAll(t, []tr{{pct: 5}, {pct: 10}}))
	require.NotNil(t, onlyWins)
	assert.True(t, math.IsInf(onlyWins.ProfitFactor, 1))

	onlyLosses := ComputeTrades(buildAll(t, []tr{{pct: -5}, {pct: -10}}))
	require.NotNil(t, onlyLosses)
	assert.InDelta(t, 0.0, onlyLosses.ProfitFactor, 1e-9)

	flat := ComputeTrades(buildAll(t, []tr{{pct: 0}}))
	require.NotNil(t, flat)
	assert.InDelta(t, 0.0, flat.ProfitFactor, 1e-9)
}

func TestStreaks(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 1}, {pct: 2}, {pct: -1}, {pct: 3}, {pct: 4}, {pct: 5}, {pct: 0}, {pct: -2}, {pct: -3},
	}))
	require.NotNil(t, st)

	assert.Equal(t, 3, st.MaxWinStreak)
	assert.Equal(t, 2, st.MaxLossStreak)
	assert.Equal(t, -2, st.CurrentStreak)
}

func TestCurrentStreakStopsAtZeroProfit(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: -1}, {pct: 0}, {pct: 2}, {pct: 3},
	}))
	require.NotNil(t, st)
	assert.Equal(t, 2, st.CurrentStreak)

	flatLast := ComputeTrades(buildAll(t, []tr{{pct: 5}, {pct: 0}}))
	require.NotNil(t, flatLast)
	assert.Equal(t, 0, flatLast.CurrentStreak)
}

func TestCurrentStreakSignMatchesMostRecent(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{{pct: -1}, {pct: 2}, {pct: 3}, {pct: 4}}))
	require.NotNil(t, st)
	assert.Equal(t, 3, st.CurrentStreak)
}

func TestHoldTimeMeans(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 10, entryAt: "09:00", exitAt: "10:00"}, // winner, 60m
		{pct: 5, entryAt: "09:00", exitAt: "09:30"},  // winner, 30m
		{pct: -5, entryAt: "09:00", exitAt: "11:00"}, // loser, 120m
		{pct: -2},                                    // loser, unknown hold
	}))
	require.NotNil(t, st)

	assert.Equal(t, 3, st.HoldSamples)
	assert.InDelta(t, 70.0, st.AvgHoldMins, 1e-9)
	assert.Equal(t, 2, st.WinHoldSamples)
	assert.InDelta(t, 45.0, st.AvgWinHoldMins, 1e-9)
	assert.Equal(t, 1, st.LossHoldSamples)
	assert.InDelta(t, 120.0, st.AvgLossHoldMins, 1e-9)
}

func TestHoldTimeEmptySubset(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{{pct: 10}}))
	require.NotNil(t, st)
	assert.Zero(t, st.HoldSamples)
	assert.Zero(t, st.WinHoldSamples)
	assert.Zero(t, st.LossHoldSamples)
}

func TestEmotionBuckets(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 10, emotions: "FOMO entry, couldn't wait"},
		{pct: -5, emotions: "pure fomo again"},
		{pct: -8, emotions: "Revenge trade after the stop out"},
		{pct: 4, emotions: "calm, followed the plan"},
		{pct: 2},
	}))
	require.NotNil(t, st)

	require.Contains(t, st.Emotions, "fomo")
	assert.Equal(t, 2, st.Emotions["fomo"].Count)
	assert.InDelta(t, 50.0, st.Emotions["fomo"].WinRate, 1e-9)

	require.Contains(t, st.Emotions, "revenge")
	assert.Equal(t, 1, st.Emotions["revenge"].Count)
	assert.InDelta(t, 0.0, st.Emotions["revenge"].WinRate, 1e-9)

	require.Contains(t, st.Emotions, "calm")
	assert.InDelta(t, 100.0, st.Emotions["calm"].WinRate, 1e-9)
}

func TestEmotionTradeCanMatchSeveralTags(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 10, emotions: "started calm, ended in FOMO"},
	}))
	require.NotNil(t, st)

	assert.Contains(t, st.Emotions, "calm")
	assert.Contains(t, st.Emotions, "fomo")
	assert.NotContains(t, st.Emotions, "revenge")
}

func TestTypeAndDCABreakdowns(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 10, typ: trade.Scalp},
		{pct: -5, typ: trade.Scalp},
		{pct: 20, typ: trade.Swing, dca: true},
		{pct: 8, typ: trade.Hold, dca: true},
	}))
	require.NotNil(t, st)

	require.Contains(t, st.ByType, trade.Scalp)
	assert.Equal(t, 2, st.ByType[trade.Scalp].Count)
	assert.InDelta(t, 50.0, st.ByType[trade.Scalp].WinRate, 1e-9)
	assert.InDelta(t, 25.0, st.ByType[trade.Scalp].AvgProfit, 1e-9)

	assert.Equal(t, 1, st.ByType[trade.Swing].Count)
	assert.Equal(t, 1, st.ByType[trade.Hold].Count)

	assert.Equal(t, 2, st.DCA.Count)
	assert.InDelta(t, 100.0, st.DCA.WinRate, 1e-9)
	assert.InDelta(t, 140.0, st.DCA.AvgProfit, 1e-9)
	assert.Equal(t, 2, st.NonDCA.Count)
	assert.InDelta(t, 50.0, st.NonDCA.WinRate, 1e-9)
}

func TestExecutionCostMetrics(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: -5, peak: 20},  // roundtrip, gave back 50
		{pct: -10, peak: 15}, // roundtrip, gave back 100
		{pct: 10, peak: 30},  // winner with missed profit
	}))
	require.NotNil(t, st)

	assert.Equal(t, 2, st.RoundtripCount)
	assert.InDelta(t, 150.0, st.TotalRoundtripped, 1e-9)

	// Each trade's missed profit is peak-out minus real-out on a 1000 position.
	want := (200.0 + 50.0) + (150.0 + 100.0) + (300.0 - 100.0)
	assert.InDelta(t, want, st.TotalMissedProfit, 1e-9)
}
