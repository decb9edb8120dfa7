package trade

// Type classifies the intended duration of a trade.
type Type string

const (
	Scalp Type = "scalp"
	Swing Type = "swing"
	Hold  Type = "hold"
)

// ValidType reports whether t is one of the known trade types.
func ValidType(t Type) bool {
	switch t {
	case Scalp, Swing, Hold:
		return true
	}
	return false
}

// Leg is one fill of an entry or exit. Size is capital measured in entry
// dollars: for entries the amount invested, for exits the slice of the entry
// position being closed. Date is a calendar date (2006-01-02) and Time an
// optional clock time (15:04).
type Leg struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
	Date  string  `json:"date"`
	Time  string  `json:"time,omitempty"`
}

// filled reports whether the leg has both price and size.
func (l Leg) filled() bool {
	return l.Price > 0 && l.Size > 0
}

// Record is a journaled trade. Immutable once created; derived fields are
// computed exactly once by NewRecord and never recomputed.
type Record struct {
	ID    string `json:"id"`
	Token string `json:"token,omitempty"`
	Type  Type   `json:"tradeType"`

	Entries []Leg `json:"entries"`
	Exits   []Leg `json:"exits"`

	MaxPrice float64 `json:"maxPrice"`
	MinPrice float64 `json:"minPrice"`

	Reason   string `json:"reason,omitempty"`
	Emotions string `json:"emotions,omitempty"`
	Lessons  string `json:"lessons,omitempty"`

	TotalIn                float64 `json:"totalIn"`
	TotalOut               float64 `json:"totalOut"`
	AvgEntryPrice          float64 `json:"avgEntryPrice"`
	ActualProfit           float64 `json:"actualProfit"`
	ActualProfitPercent    float64 `json:"actualProfitPercent"`
	PotentialProfit        float64 `json:"potentialProfit"`
	PotentialProfitPercent float64 `json:"potentialProfitPercent"`
	MissedProfit           float64 `json:"missedProfit"`
	MaxDrawdownPercent     float64 `json:"maxDrawdownPercent"`
	WasEverProfitable      bool    `json:"wasEverProfitable"`
	SavedByEarlyExit       bool    `json:"savedByEarlyExit"`
	Roundtripped           bool    `json:"roundtripped"`

	// HoldTime is a display string ("45m", "3h 20m", "2d 5h"); empty when
	// unknown. HoldTimeMins is -1 when unknown.
	HoldTime     string `json:"holdTime,omitempty"`
	HoldTimeMins int    `json:"holdTimeMins"`

	IsDCA         bool `json:"isDCA"`
	IsPartialExit bool `json:"isPartialExit"`
}

// HasHoldTime reports whether the trade carries a usable hold time.
func (r Record) HasHoldTime() bool {
	return r.HoldTimeMins >= 0
}
