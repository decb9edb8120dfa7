package portfolio

import (
	"github.com/rustyeddy/tradebook/pkg/id"
)

// TotalProfit sums realized profit over all days.
func (s *Snapshot) TotalProfit() float64 {
	sum := 0.0
	for _, d := range s.Days {
		sum += d.Profit
	}
	return sum
}

// TotalWithdrawn sums all withdrawals.
func (s *Snapshot) TotalWithdrawn() float64 {
	sum := 0.0
	for _, w := range s.Withdrawals {
		sum += w.Amount
	}
	return sum
}

// CurrentBalance is starting capital plus realized profit minus withdrawals.
func (s *Snapshot) CurrentBalance() float64 {
	return s.StartingBalance + s.TotalProfit() - s.TotalWithdrawn()
}

// TotalReturnPercent counts cashed-out profit as part of total return. Zero
// when no starting balance is recorded.
func (s *Snapshot) TotalReturnPercent() float64 {
	if s.StartingBalance == 0 {
		return 0
	}
	return (s.CurrentBalance() + s.TotalWithdrawn() - s.StartingBalance) / s.StartingBalance * 100
}

// AddWithdrawal appends a withdrawal. Non-positive amounts are a no-op.
func (s *Snapshot) AddWithdrawal(amount float64, date string) (Withdrawal, bool) {
	if amount <= 0 {
		return Withdrawal{}, false
	}
	w := Withdrawal{ID: id.New(), Amount: amount, Date: date}
	s.Withdrawals = append(s.Withdrawals, w)
	return w, true
}

// RemoveWithdrawal filters the withdrawal list by id. The day grid is never
// touched.
func (s *Snapshot) RemoveWithdrawal(withdrawalID string) bool {
	kept := s.Withdrawals[:0]
	removed := false
	for _, w := range s.Withdrawals {
		if w.ID == withdrawalID {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	s.Withdrawals = kept
	return removed
}
