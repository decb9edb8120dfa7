package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/portfolio"
)

func TestPrintStatisticsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintStatistics(&buf, nil)
	assert.Contains(t, buf.String(), "No trades recorded yet.")
}

func TestPrintStatisticsSections(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{
		{pct: 10, emotions: "calm"},
		{pct: -5, peak: 20},
		{pct: 8, dca: true},
	}))

	var buf bytes.Buffer
	PrintStatistics(&buf, st)
	out := buf.String()

	assert.Contains(t, out, "Trading Performance")
	assert.Contains(t, out, "Win Rate:")
	assert.Contains(t, out, "Hold Times")
	assert.Contains(t, out, "Emotions")
	assert.Contains(t, out, "calm")
	assert.Contains(t, out, "DCA vs Single Entry")
	assert.Contains(t, out, "Execution Cost")
}

func TestPrintStatisticsInfiniteProfitFactor(t *testing.T) {
	t.Parallel()

	st := ComputeTrades(buildAll(t, []tr{{pct: 5}}))

	var buf bytes.Buffer
	PrintStatistics(&buf, st)
	assert.Contains(t, buf.String(), "Inf (no losing trades)")
}

func TestFormatHoldMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", formatHoldMean(0, 0))
	assert.Equal(t, "45 min over 3 trades", formatHoldMean(45, 3))
}

func TestPrintGuide(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintGuide(&buf, nil)
	assert.Contains(t, buf.String(), "at least 3 trades")

	buf.Reset()
	g := ComputeGuide(buildAll(t, []tr{{pct: 10}, {pct: -5}, {pct: 3}}))
	PrintGuide(&buf, g)
	assert.Contains(t, buf.String(), "Optimal Take Profit:")
	assert.Contains(t, buf.String(), "Recommended Stop:")
}

func TestPrintInsights(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintInsights(&buf, nil)
	assert.Contains(t, buf.String(), "No insights yet.")

	buf.Reset()
	PrintInsights(&buf, []Insight{{Kind: Warning, Text: "watch it"}})
	assert.Contains(t, buf.String(), "[warning] watch it")
}

func TestPrintBalance(t *testing.T) {
	t.Parallel()

	snap := portfolio.New()
	snap.StartingBalance = 10000
	snap.Days[0].Profit = 100
	snap.AddWithdrawal(500, "2024-02-01")

	var buf bytes.Buffer
	PrintBalance(&buf, snap)
	out := buf.String()

	assert.Contains(t, out, "Starting Balance: 10000.00")
	assert.Contains(t, out, "Current Balance:  9600.00")
	assert.Contains(t, out, "Total Return:     1.00%")
}

func TestPrintJourney(t *testing.T) {
	t.Parallel()

	snap := portfolio.New()
	snap.OldHourlySalary = 25
	snap.Days[0].Profit = 500
	snap.Days[0].Hours = 5

	var buf bytes.Buffer
	PrintJourney(&buf, ComputeJourney(snap))
	out := buf.String()

	assert.Contains(t, out, "Old Job vs Trading")
	assert.Contains(t, out, "Trading Rate:")
	assert.Contains(t, out, "Days to Surpass:")
}
