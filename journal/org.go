package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradebook/trade"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a journal. Structured facts live in a PROPERTIES drawer for easy
// search; the narrative sections carry whatever the trader wrote down.
func FormatTradeOrg(dayIndex int, t trade.Record) string {
	name := t.Token
	if name == "" {
		name = string(t.Type)
	}
	heading := fmt.Sprintf("** Trade: %s (%s)", name, shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":DAY: %d\n", dayIndex+1))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", t.Type))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.AvgEntryPrice))
	b.WriteString(fmt.Sprintf(":TOTAL_IN: %.2f\n", t.TotalIn))
	b.WriteString(fmt.Sprintf(":TOTAL_OUT: %.2f\n", t.TotalOut))
	b.WriteString(fmt.Sprintf(":PROFIT: %.2f\n", t.ActualProfit))
	b.WriteString(fmt.Sprintf(":PROFIT_PCT: %.2f\n", t.ActualProfitPercent))
	b.WriteString(fmt.Sprintf(":MISSED_PROFIT: %.2f\n", t.MissedProfit))
	if t.HasHoldTime() {
		b.WriteString(fmt.Sprintf(":HOLD_TIME: %s\n", t.HoldTime))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Reason\n")
	writeNarrative(&b, t.Reason)
	b.WriteString("\n*** Emotions\n")
	writeNarrative(&b, t.Emotions)
	b.WriteString("\n*** Lessons\n")
	writeNarrative(&b, t.Lessons)

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(dayIndex int, trades []trade.Record) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(dayIndex, t))
	}
	return b.String()
}

func writeNarrative(b *strings.Builder, text string) {
	if text == "" {
		b.WriteString("- \n")
		return
	}
	b.WriteString("- " + text + "\n")
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
