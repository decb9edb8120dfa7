package trade

import (
	"github.com/rustyeddy/tradebook/pkg/id"
)

// Draft is the raw user input for a trade. MaxPrice and MinPrice are pointers
// so the caller can distinguish "missing" from zero; legs with a missing
// price or size are dropped during normalization.
type Draft struct {
	Token    string
	Type     Type
	Entries  []Leg
	Exits    []Leg
	MaxPrice *float64
	MinPrice *float64
	Reason   string
	Emotions string
	Lessons  string
}

// NewRecord validates a draft and derives all computed fields. It returns
// ok=false (and no record) when the filtered entries or exits are empty or
// either extreme price is missing; per the journaling contract that is a
// silent no-op, not an error.
func NewRecord(d Draft) (Record, bool) {
	entries := filterLegs(d.Entries)
	exits := filterLegs(d.Exits)
	if len(entries) == 0 || len(exits) == 0 || d.MaxPrice == nil || d.MinPrice == nil {
		return Record{}, false
	}

	maxPrice := *d.MaxPrice
	minPrice := *d.MinPrice

	var totalIn, weighted float64
	for _, l := range entries {
		totalIn += l.Size
		weighted += l.Price * l.Size
	}
	avgEntry := weighted / totalIn

	// An exit leg's size is the slice of entry capital being closed; its
	// proceeds scale with the price ratio against the average entry.
	var totalOut float64
	for _, l := range exits {
		totalOut += l.Size * l.Price / avgEntry
	}

	actualProfit := totalOut - totalIn
	actualProfitPct := actualProfit / totalIn * 100

	potentialPct := (maxPrice - avgEntry) / avgEntry * 100
	potentialProfit := totalIn * potentialPct / 100
	potentialOut := totalIn * (1 + potentialPct/100)

	missed := potentialOut - totalOut
	if missed < 0 {
		missed = 0
	}

	wasEverProfitable := maxPrice > avgEntry

	tradeType := d.Type
	if !ValidType(tradeType) {
		tradeType = Scalp
	}

	mins, display := holdTime(entries[0], exits[len(exits)-1])

	return Record{
		ID:      id.New(),
		Token:   d.Token,
		Type:    tradeType,
		Entries: entries,
		Exits:   exits,

		MaxPrice: maxPrice,
		MinPrice: minPrice,

		Reason:   d.Reason,
		Emotions: d.Emotions,
		Lessons:  d.Lessons,

		TotalIn:                totalIn,
		TotalOut:               totalOut,
		AvgEntryPrice:          avgEntry,
		ActualProfit:           actualProfit,
		ActualProfitPercent:    actualProfitPct,
		PotentialProfit:        potentialProfit,
		PotentialProfitPercent: potentialPct,
		MissedProfit:           missed,
		MaxDrawdownPercent:     (minPrice - avgEntry) / avgEntry * 100,
		WasEverProfitable:      wasEverProfitable,
		SavedByEarlyExit:       actualProfit > 0 && totalOut < potentialOut,
		Roundtripped:           actualProfit < 0 && wasEverProfitable,

		HoldTime:     display,
		HoldTimeMins: mins,

		IsDCA:         len(entries) > 1,
		IsPartialExit: len(exits) > 1,
	}, true
}

func filterLegs(legs []Leg) []Leg {
	out := make([]Leg, 0, len(legs))
	for _, l := range legs {
		if l.filled() {
			out = append(out, l)
		}
	}
	return out
}
