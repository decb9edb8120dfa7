// Package journal persists portfolio snapshots and exports trade records.
// Both stores implement portfolio.Store; every save replaces the stored
// snapshot wholesale so readers only ever see pre- or post-mutation state.
package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

// SQLite stores the snapshot in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Load reads the full snapshot. An empty database yields the default
// all-zero snapshot.
func (s *SQLite) Load() (*portfolio.Snapshot, error) {
	snap := portfolio.New()

	row := s.db.QueryRow(`SELECT version, start_date, old_hourly_salary, starting_balance FROM meta WHERE id = 1`)
	err := row.Scan(&snap.Version, &snap.StartDate, &snap.OldHourlySalary, &snap.StartingBalance)
	if err == sql.ErrNoRows {
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load meta: %w", err)
	}
	snap.Version = portfolio.SnapshotVersion

	if err := s.loadDays(snap); err != nil {
		return nil, err
	}
	if err := s.loadTrades(snap); err != nil {
		return nil, err
	}
	if err := s.loadWithdrawals(snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *SQLite) loadDays(snap *portfolio.Snapshot) error {
	rows, err := s.db.Query(`SELECT day_index, profit, hours FROM days`)
	if err != nil {
		return fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			idx           int
			profit, hours float64
		)
		if err := rows.Scan(&idx, &profit, &hours); err != nil {
			return err
		}
		if idx < 0 || idx >= portfolio.YearDays {
			continue
		}
		snap.Days[idx].Profit = profit
		snap.Days[idx].Hours = hours
	}
	return rows.Err()
}

func (s *SQLite) loadTrades(snap *portfolio.Snapshot) error {
	rows, err := s.db.Query(`
		SELECT trade_id, day_index, token, trade_type, max_price, min_price,
		       reason, emotions, lessons,
		       total_in, total_out, avg_entry_price,
		       actual_profit, actual_profit_pct,
		       potential_profit, potential_profit_pct,
		       missed_profit, max_drawdown_pct,
		       was_ever_profitable, saved_by_early_exit, roundtripped,
		       hold_time, hold_time_mins, is_dca, is_partial_exit
		FROM trades
		ORDER BY day_index ASC, seq ASC`)
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec trade.Record
			idx int
		)
		if err := rows.Scan(
			&rec.ID, &idx, &rec.Token, &rec.Type, &rec.MaxPrice, &rec.MinPrice,
			&rec.Reason, &rec.Emotions, &rec.Lessons,
			&rec.TotalIn, &rec.TotalOut, &rec.AvgEntryPrice,
			&rec.ActualProfit, &rec.ActualProfitPercent,
			&rec.PotentialProfit, &rec.PotentialProfitPercent,
			&rec.MissedProfit, &rec.MaxDrawdownPercent,
			&rec.WasEverProfitable, &rec.SavedByEarlyExit, &rec.Roundtripped,
			&rec.HoldTime, &rec.HoldTimeMins, &rec.IsDCA, &rec.IsPartialExit,
		); err != nil {
			return err
		}
		if idx < 0 || idx >= portfolio.YearDays {
			continue
		}

		entries, exits, err := s.loadLegs(rec.ID)
		if err != nil {
			return err
		}
		rec.Entries = entries
		rec.Exits = exits

		snap.Days[idx].Trades = append(snap.Days[idx].Trades, rec)
	}
	return rows.Err()
}

func (s *SQLite) loadLegs(tradeID string) (entries, exits []trade.Leg, err error) {
	rows, err := s.db.Query(`
		SELECT kind, price, size, date, time
		FROM legs
		WHERE trade_id = ?
		ORDER BY kind ASC, leg_index ASC`, tradeID)
	if err != nil {
		return nil, nil, fmt.Errorf("load legs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			leg  trade.Leg
		)
		if err := rows.Scan(&kind, &leg.Price, &leg.Size, &leg.Date, &leg.Time); err != nil {
			return nil, nil, err
		}
		if kind == "entry" {
			entries = append(entries, leg)
		} else {
			exits = append(exits, leg)
		}
	}
	return entries, exits, rows.Err()
}

func (s *SQLite) loadWithdrawals(snap *portfolio.Snapshot) error {
	rows, err := s.db.Query(`SELECT withdrawal_id, amount, date FROM withdrawals ORDER BY seq ASC`)
	if err != nil {
		return fmt.Errorf("load withdrawals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w portfolio.Withdrawal
		if err := rows.Scan(&w.ID, &w.Amount, &w.Date); err != nil {
			return err
		}
		snap.Withdrawals = append(snap.Withdrawals, w)
	}
	return rows.Err()
}

// Save replaces the stored snapshot wholesale inside one transaction.
func (s *SQLite) Save(snap *portfolio.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "days", "trades", "legs", "withdrawals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (id, version, start_date, old_hourly_salary, starting_balance)
		VALUES (1, ?, ?, ?, ?)`,
		portfolio.SnapshotVersion, snap.StartDate, snap.OldHourlySalary, snap.StartingBalance,
	); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	for idx, day := range snap.Days {
		if day.Profit == 0 && day.Hours == 0 && len(day.Trades) == 0 {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO days (day_index, profit, hours) VALUES (?, ?, ?)`,
			idx, day.Profit, day.Hours); err != nil {
			return fmt.Errorf("save day %d: %w", idx, err)
		}

		for seq, rec := range day.Trades {
			if err := insertTrade(tx, idx, seq, rec); err != nil {
				return err
			}
		}
	}

	for seq, w := range snap.Withdrawals {
		if _, err := tx.Exec(`INSERT INTO withdrawals (withdrawal_id, seq, amount, date) VALUES (?, ?, ?, ?)`,
			w.ID, seq, w.Amount, w.Date); err != nil {
			return fmt.Errorf("save withdrawal %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

func insertTrade(tx *sql.Tx, dayIndex, seq int, rec trade.Record) error {
	if _, err := tx.Exec(`
		INSERT INTO trades (
			trade_id, day_index, seq, token, trade_type, max_price, min_price,
			reason, emotions, lessons,
			total_in, total_out, avg_entry_price,
			actual_profit, actual_profit_pct,
			potential_profit, potential_profit_pct,
			missed_profit, max_drawdown_pct,
			was_ever_profitable, saved_by_early_exit, roundtripped,
			hold_time, hold_time_mins, is_dca, is_partial_exit
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, dayIndex, seq, rec.Token, string(rec.Type), rec.MaxPrice, rec.MinPrice,
		rec.Reason, rec.Emotions, rec.Lessons,
		rec.TotalIn, rec.TotalOut, rec.AvgEntryPrice,
		rec.ActualProfit, rec.ActualProfitPercent,
		rec.PotentialProfit, rec.PotentialProfitPercent,
		rec.MissedProfit, rec.MaxDrawdownPercent,
		rec.WasEverProfitable, rec.SavedByEarlyExit, rec.Roundtripped,
		rec.HoldTime, rec.HoldTimeMins, rec.IsDCA, rec.IsPartialExit,
	); err != nil {
		return fmt.Errorf("save trade %s: %w", rec.ID, err)
	}

	for i, leg := range rec.Entries {
		if err := insertLeg(tx, rec.ID, "entry", i, leg); err != nil {
			return err
		}
	}
	for i, leg := range rec.Exits {
		if err := insertLeg(tx, rec.ID, "exit", i, leg); err != nil {
			return err
		}
	}
	return nil
}

func insertLeg(tx *sql.Tx, tradeID, kind string, idx int, leg trade.Leg) error {
	_, err := tx.Exec(`INSERT INTO legs (trade_id, kind, leg_index, price, size, date, time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tradeID, kind, idx, leg.Price, leg.Size, leg.Date, leg.Time)
	if err != nil {
		return fmt.Errorf("save leg %s/%s/%d: %w", tradeID, kind, idx, err)
	}
	return nil
}

// Reset drops all stored state.
func (s *SQLite) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "days", "trades", "legs", "withdrawals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
