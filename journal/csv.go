package journal

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

// csvHeader is the fixed export column order. Consumers key on these names;
// append-only.
var csvHeader = []string{
	"day_index",
	"trade_id",
	"token",
	"trade_type",
	"entry_time",
	"exit_time",
	"hold_time",
	"total_in",
	"total_out",
	"avg_entry_price",
	"actual_profit",
	"actual_profit_pct",
	"max_price",
	"min_price",
	"potential_profit",
	"potential_profit_pct",
	"missed_profit",
	"max_drawdown_pct",
	"is_dca",
	"is_partial_exit",
	"roundtripped",
	"saved_by_early_exit",
	"reason",
	"emotions",
	"lessons",
}

// ExportCSV writes every trade, day by day, in chronological order.
func ExportCSV(w io.Writer, snap *portfolio.Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for idx, day := range snap.Days {
		for _, rec := range day.Trades {
			if err := cw.Write(csvRow(idx, rec)); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile is ExportCSV to a newly created file.
func ExportCSVFile(path string, snap *portfolio.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ExportCSV(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func csvRow(dayIndex int, rec trade.Record) []string {
	return []string{
		strconv.Itoa(dayIndex),
		rec.ID,
		rec.Token,
		string(rec.Type),
		legTime(rec.Entries[0]),
		legTime(rec.Exits[len(rec.Exits)-1]),
		rec.HoldTime,
		f(rec.TotalIn),
		f(rec.TotalOut),
		f(rec.AvgEntryPrice),
		f(rec.ActualProfit),
		f(rec.ActualProfitPercent),
		f(rec.MaxPrice),
		f(rec.MinPrice),
		f(rec.PotentialProfit),
		f(rec.PotentialProfitPercent),
		f(rec.MissedProfit),
		f(rec.MaxDrawdownPercent),
		strconv.FormatBool(rec.IsDCA),
		strconv.FormatBool(rec.IsPartialExit),
		strconv.FormatBool(rec.Roundtripped),
		strconv.FormatBool(rec.SavedByEarlyExit),
		rec.Reason,
		rec.Emotions,
		rec.Lessons,
	}
}

func legTime(l trade.Leg) string {
	if l.Time == "" {
		return l.Date
	}
	return l.Date + " " + l.Time
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
