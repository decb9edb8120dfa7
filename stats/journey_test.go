package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/portfolio"
)

func TestComputeJourney(t *testing.T) {
	t.Parallel()

	snap := portfolio.New()
	snap.OldHourlySalary = 25

	snap.Days[0].Profit = 1200
	snap.Days[0].Hours = 6
	snap.Days[1].Profit = -200
	snap.Days[1].Hours = 4
	snap.Days[2].Profit = 500
	snap.Days[2].Hours = 5

	j := ComputeJourney(snap)

	assert.InDelta(t, 1500.0, j.TotalProfit, 1e-9)
	assert.InDelta(t, 15.0, j.TotalHours, 1e-9)
	assert.Equal(t, 3, j.DaysWorked)
	assert.Equal(t, 2, j.ProfitableDays)
	assert.Equal(t, 1, j.LosingDays)
	assert.Equal(t, 1, j.DaysOver1K)

	assert.InDelta(t, 1500.0/365, j.AvgDailyProfit, 1e-9)
	assert.InDelta(t, 100.0, j.EffectiveHourlyRate, 1e-9)
	assert.InDelta(t, 5.0, j.AvgHoursPerDay, 1e-9)

	assert.InDelta(t, 25*40*52, j.OldYearlyIncome, 1e-9)
	// Projection floor of 8 hours/day applies above the 5h average.
	assert.InDelta(t, 8.0, j.ProjectionHours, 1e-9)
	assert.InDelta(t, 100*8*365, j.AnnualProjection, 1e-9)

	// (52000 - 1500) / 800, rounded up.
	assert.InDelta(t, 64.0, j.DaysToSurpassOldJob, 1e-9)
}

func TestJourneyNoHours(t *testing.T) {
	t.Parallel()

	snap := portfolio.New()
	snap.OldHourlySalary = 25
	snap.Days[0].Profit = 100

	j := ComputeJourney(snap)

	assert.InDelta(t, 0.0, j.EffectiveHourlyRate, 1e-9)
	assert.True(t, math.IsInf(j.DaysToSurpassOldJob, 1))
}

func TestJourneyProjectionUsesAverageAboveFloor(t *testing.T) {
	t.Parallel()

	snap := portfolio.New()
	snap.Days[0].Profit = 100
	snap.Days[0].Hours = 12

	j := ComputeJourney(snap)
	assert.InDelta(t, 12.0, j.ProjectionHours, 1e-9)
}

func TestJourneyQuoteTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		journey Journey
		want    string
	}{
		{"big_daily", Journey{AvgDailyProfit: 1200}, "over $1,000 per day"},
		{"more_winning_days", Journey{ProfitableDays: 3, LosingDays: 1}, "not a race"},
		{"net_positive", Journey{TotalProfit: 10, ProfitableDays: 1, LosingDays: 2}, "net positive"},
		{"underwater", Journey{TotalProfit: -50, LosingDays: 2}, "part of the journey"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			quote, sub := tt.journey.Quote()
			assert.Contains(t, quote, tt.want)
			assert.NotEmpty(t, sub)
		})
	}
}
