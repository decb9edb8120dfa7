package portfolio

import (
	"github.com/rustyeddy/tradebook/trade"
)

// AddTrade appends a trade to the day and recomputes the day profit.
func (d *Day) AddTrade(r trade.Record) {
	d.Trades = append(d.Trades, r)
	d.recalcProfit()
}

// RemoveTrade deletes the trade with the given id, if present, and recomputes
// the day profit. It reports whether a trade was removed.
func (d *Day) RemoveTrade(tradeID string) bool {
	kept := d.Trades[:0]
	removed := false
	for _, t := range d.Trades {
		if t.ID == tradeID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	d.Trades = kept
	d.recalcProfit()
	return removed
}

// recalcProfit is the only writer of Day.Profit. Summing from scratch after
// every mutation keeps the total from drifting regardless of insert/delete
// order.
func (d *Day) recalcProfit() {
	sum := 0.0
	for _, t := range d.Trades {
		sum += t.ActualProfit
	}
	d.Profit = sum
}
