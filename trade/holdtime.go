package trade

import (
	"fmt"
	"time"
)

const (
	legDateLayout = "2006-01-02"
	legTimeLayout = "2006-01-02 15:04"
)

// holdTime derives the minutes between the first entry leg and the last exit
// leg. Missing or unparsable timestamps, or an exit before the entry, yield
// (-1, "") and the trade is simply excluded from hold-time aggregates.
func holdTime(firstEntry, lastExit Leg) (int, string) {
	start, ok := legTimestamp(firstEntry)
	if !ok {
		return -1, ""
	}
	end, ok := legTimestamp(lastExit)
	if !ok {
		return -1, ""
	}

	delta := end.Sub(start)
	if delta < 0 {
		return -1, ""
	}

	mins := int(delta.Minutes())
	return mins, formatHold(mins)
}

func legTimestamp(l Leg) (time.Time, bool) {
	if l.Date == "" {
		return time.Time{}, false
	}
	if l.Time != "" {
		if t, err := time.Parse(legTimeLayout, l.Date+" "+l.Time); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	t, err := time.Parse(legDateLayout, l.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatHold renders minutes by magnitude: "45m", "3h 20m", "2d 5h".
func formatHold(mins int) string {
	switch {
	case mins < 60:
		return fmt.Sprintf("%dm", mins)
	case mins < 24*60:
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	default:
		return fmt.Sprintf("%dd %dh", mins/(24*60), (mins%(24*60))/60)
	}
}
