package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/tradebook/portfolio"
	"github.com/rustyeddy/tradebook/trade"
)

// File stores the snapshot as one JSON document, the same shape the original
// browser build kept in localStorage. Legacy (pre-versioned) documents are
// migrated to the current schema at load time.
type File struct {
	path string
}

// NewFile returns a JSON file store at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and, if needed, migrates the snapshot. A missing file yields
// the default all-zero snapshot.
func (f *File) Load() (*portfolio.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return portfolio.New(), nil
	}
	if err != nil {
		return nil, err
	}

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", f.path, err)
	}

	if probe.Version < portfolio.SnapshotVersion {
		return migrateLegacySnapshot(data)
	}

	snap := portfolio.New()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", f.path, err)
	}
	snap.Normalize()
	return snap, nil
}

// legacyDay mirrors the pre-versioned per-day shape with single-leg trades.
type legacyDay struct {
	Profit float64        `json:"profit"`
	Hours  flexFloat      `json:"hours"`
	Trades []trade.Legacy `json:"trades"`
}

type legacySnapshot struct {
	StartDate       string                 `json:"startDate"`
	OldHourlySalary flexFloat              `json:"oldHourlySalary"`
	StartingBalance flexFloat              `json:"startingBalance"`
	Withdrawals     []portfolio.Withdrawal `json:"withdrawals"`
	DailyData       []legacyDay            `json:"dailyData"`
}

func migrateLegacySnapshot(data []byte) (*portfolio.Snapshot, error) {
	var legacy legacySnapshot
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parse legacy snapshot: %w", err)
	}

	snap := portfolio.New()
	snap.StartDate = legacy.StartDate
	snap.OldHourlySalary = float64(legacy.OldHourlySalary)
	snap.StartingBalance = float64(legacy.StartingBalance)
	snap.Withdrawals = legacy.Withdrawals

	for idx, day := range legacy.DailyData {
		if idx >= portfolio.YearDays {
			break
		}
		snap.Days[idx].Hours = float64(day.Hours)
		for _, lt := range day.Trades {
			// AddTrade recomputes the day profit, so migrated profits
			// follow the current model rather than the stored totals.
			if rec, ok := trade.FromLegacy(lt); ok {
				snap.Days[idx].AddTrade(rec)
			}
		}
	}
	return snap, nil
}

// Save writes the snapshot atomically: temp file then rename, so a crashed
// write never leaves a half-written snapshot behind.
func (f *File) Save(snap *portfolio.Snapshot) error {
	snap.Version = portfolio.SnapshotVersion

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}

// Reset deletes the snapshot file.
func (f *File) Reset() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for the file store.
func (f *File) Close() error { return nil }

// flexFloat accepts both JSON numbers and numeric strings; early builds
// persisted form inputs as strings.
type flexFloat float64

func (v *flexFloat) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*v = 0
			return nil
		}
		n = json.Number(s)
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*v = flexFloat(f)
	return nil
}
