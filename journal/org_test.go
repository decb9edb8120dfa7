package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	rec := mkRecord(t, "SOL", 120)
	rec.ID = "01JABCDEF123456789"

	out := FormatTradeOrg(0, rec)

	assert.True(t, strings.HasPrefix(out, "** Trade: SOL (01JABCDE)"))
	assert.Contains(t, out, ":TRADE_ID: 01JABCDEF123456789\n")
	assert.Contains(t, out, ":DAY: 1\n")
	assert.Contains(t, out, ":TYPE: scalp\n")
	assert.Contains(t, out, ":ENTRY_PRICE: 100.00000\n")
	assert.Contains(t, out, ":TOTAL_IN: 1000.00\n")
	assert.Contains(t, out, ":TOTAL_OUT: 1200.00\n")
	assert.Contains(t, out, ":PROFIT: 200.00\n")
	assert.Contains(t, out, ":HOLD_TIME: 1h 30m\n")
	assert.Contains(t, out, "*** Reason\n- breakout\n")
	assert.Contains(t, out, "*** Emotions\n- calm\n")
	assert.Contains(t, out, "*** Lessons\n- wait for the retest\n")
}

func TestFormatTradeOrgNoTokenNoHoldTime(t *testing.T) {
	t.Parallel()

	maxPrice, minPrice := 115.0, 95.0
	rec, ok := trade.NewRecord(trade.Draft{
		Type:     trade.Swing,
		Entries:  []trade.Leg{{Price: 100, Size: 500}},
		Exits:    []trade.Leg{{Price: 110, Size: 500}},
		MaxPrice: &maxPrice,
		MinPrice: &minPrice,
	})
	require.True(t, ok)

	out := FormatTradeOrg(4, rec)

	assert.Contains(t, out, "** Trade: swing (")
	assert.Contains(t, out, ":DAY: 5\n")
	assert.NotContains(t, out, ":HOLD_TIME:")
	assert.Contains(t, out, "*** Reason\n- \n")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []trade.Record{mkRecord(t, "SOL", 120), mkRecord(t, "ETH", 90)}

	out := FormatTradesOrg(2, trades)

	assert.Equal(t, 2, strings.Count(out, "** Trade:"))
	assert.Contains(t, out, "** Trade: SOL")
	assert.Contains(t, out, "** Trade: ETH")
}
