package portfolio

import (
	"github.com/rustyeddy/tradebook/trade"
)

// YearDays is the fixed number of calendar slots tracked per journey.
const YearDays = 365

// SnapshotVersion is the current persisted schema version. Version 1 (or 0)
// snapshots carry single-leg trades and are migrated at load time.
const SnapshotVersion = 2

// Day is one calendar slot. Profit is always the sum of ActualProfit over
// Trades; it is recomputed in full after every insert or delete. Hours is
// independent user input.
type Day struct {
	Profit float64        `json:"profit"`
	Hours  float64        `json:"hours"`
	Trades []trade.Record `json:"trades,omitempty"`
}

// Withdrawal is cash taken out of the account. Immutable once created.
type Withdrawal struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// Snapshot is the whole persisted state. Mutating commands replace the
// relevant slice wholesale; readers never observe a partial write.
type Snapshot struct {
	Version         int          `json:"version"`
	StartDate       string       `json:"startDate,omitempty"`
	OldHourlySalary float64      `json:"oldHourlySalary,omitempty"`
	StartingBalance float64      `json:"startingBalance"`
	Withdrawals     []Withdrawal `json:"withdrawals,omitempty"`
	Days            []Day        `json:"dailyData"`
}

// New returns an all-zero snapshot with the full 365-day grid allocated.
func New() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Days:    make([]Day, YearDays),
	}
}

// Normalize pads or truncates the day grid back to exactly 365 slots, which
// protects against hand-edited or partially written snapshots.
func (s *Snapshot) Normalize() {
	if len(s.Days) == YearDays {
		return
	}
	days := make([]Day, YearDays)
	copy(days, s.Days)
	s.Days = days
}

// Trades flattens all days into one chronologically ordered list: day index
// ascending, insertion order within a day.
func (s *Snapshot) Trades() []trade.Record {
	var out []trade.Record
	for _, d := range s.Days {
		out = append(out, d.Trades...)
	}
	return out
}

// TradeCount reports the number of trades across all days.
func (s *Snapshot) TradeCount() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Trades)
	}
	return n
}
