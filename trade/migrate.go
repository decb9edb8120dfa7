package trade

import (
	"encoding/json"
)

// Legacy is the single-leg trade shape persisted by early versions of the
// journal: one entry price, one exit price and a flat position size instead
// of leg arrays. IDs were numeric creation timestamps, hence json.Number.
type Legacy struct {
	ID           json.Number `json:"id"`
	Date         string      `json:"date"`
	Token        string      `json:"tokenSymbol,omitempty"`
	Entry        float64     `json:"entry"`
	Exit         float64     `json:"exit"`
	MaxPrice     float64     `json:"maxPrice"`
	MinPrice     float64     `json:"minPrice"`
	PositionSize float64     `json:"positionSize"`
}

// FromLegacy normalizes a legacy record into the current multi-leg shape,
// rederiving every computed field under the current profit model. The
// original ID is preserved so deletions keep working across a migration.
// Records too malformed to normalize are dropped (ok=false).
func FromLegacy(l Legacy) (Record, bool) {
	maxPrice, minPrice := l.MaxPrice, l.MinPrice
	rec, ok := NewRecord(Draft{
		Token: l.Token,
		Type:  Scalp,
		Entries: []Leg{
			{Price: l.Entry, Size: l.PositionSize, Date: l.Date},
		},
		Exits: []Leg{
			{Price: l.Exit, Size: l.PositionSize, Date: l.Date},
		},
		MaxPrice: &maxPrice,
		MinPrice: &minPrice,
	})
	if !ok {
		return Record{}, false
	}
	if l.ID.String() != "" {
		rec.ID = l.ID.String()
	}
	return rec, true
}
