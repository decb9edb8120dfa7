package portfolio

import (
	"fmt"

	"github.com/rustyeddy/tradebook/trade"
)

// Store is the snapshot repository the command surface is wired to. Load
// returns a default snapshot when nothing has been persisted yet; Save
// replaces the stored snapshot wholesale.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
	Reset() error
	Close() error
}

// Book is the command surface over one snapshot store. Every mutating command
// loads the snapshot, applies the change and saves the result; reads always
// recompute from the freshly loaded snapshot.
type Book struct {
	store Store
}

// NewBook wires a command surface to a store.
func NewBook(store Store) *Book {
	return &Book{store: store}
}

// Close releases the underlying store.
func (b *Book) Close() error {
	return b.store.Close()
}

// Snapshot loads the current state for read operations.
func (b *Book) Snapshot() (*Snapshot, error) {
	return b.store.Load()
}

// AddTrade normalizes the draft and assigns the record to the given day.
// An invalid draft or day index is a silent no-op (nil record, nil error);
// callers wanting feedback must pre-validate.
func (b *Book) AddTrade(dayIndex int, draft trade.Draft) (*trade.Record, error) {
	if dayIndex < 0 || dayIndex >= YearDays {
		return nil, nil
	}

	rec, ok := trade.NewRecord(draft)
	if !ok {
		return nil, nil
	}

	snap, err := b.store.Load()
	if err != nil {
		return nil, err
	}

	snap.Days[dayIndex].AddTrade(rec)

	if err := b.store.Save(snap); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteTrade removes a trade from a day and recomputes the day profit.
func (b *Book) DeleteTrade(dayIndex int, tradeID string) error {
	if dayIndex < 0 || dayIndex >= YearDays {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}

	snap, err := b.store.Load()
	if err != nil {
		return err
	}

	if !snap.Days[dayIndex].RemoveTrade(tradeID) {
		return fmt.Errorf("trade %q not found on day %d", tradeID, dayIndex)
	}

	return b.store.Save(snap)
}

// SaveDayHours records hours worked for a day. Hours are user input and are
// never derived from trades.
func (b *Book) SaveDayHours(dayIndex int, hours float64) error {
	if dayIndex < 0 || dayIndex >= YearDays {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}

	snap, err := b.store.Load()
	if err != nil {
		return err
	}

	snap.Days[dayIndex].Hours = hours
	return b.store.Save(snap)
}

// AddWithdrawal records cash taken out of the account.
func (b *Book) AddWithdrawal(amount float64, date string) (*Withdrawal, error) {
	snap, err := b.store.Load()
	if err != nil {
		return nil, err
	}

	w, ok := snap.AddWithdrawal(amount, date)
	if !ok {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %v", amount)
	}

	if err := b.store.Save(snap); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWithdrawal removes a withdrawal by id.
func (b *Book) DeleteWithdrawal(withdrawalID string) error {
	snap, err := b.store.Load()
	if err != nil {
		return err
	}

	if !snap.RemoveWithdrawal(withdrawalID) {
		return fmt.Errorf("withdrawal %q not found", withdrawalID)
	}

	return b.store.Save(snap)
}

// SetAccount updates the journey parameters recorded at setup.
func (b *Book) SetAccount(startDate string, oldHourlySalary, startingBalance float64) error {
	snap, err := b.store.Load()
	if err != nil {
		return err
	}

	snap.StartDate = startDate
	snap.OldHourlySalary = oldHourlySalary
	snap.StartingBalance = startingBalance
	return b.store.Save(snap)
}

// ResetAll discards the entire snapshot.
func (b *Book) ResetAll() error {
	return b.store.Reset()
}

// SuggestWithdrawal reports whether a day's profit has crossed the
// withdraw-now threshold.
func SuggestWithdrawal(d Day, threshold float64) bool {
	return threshold > 0 && d.Profit > threshold
}
