package stats

import (
	"math"

	"github.com/rustyeddy/tradebook/portfolio"
)

const (
	workWeekHours   = 40
	workYearWeeks   = 52
	projectionFloor = 8 // hours/day floor for income projections
)

// Journey compares the trading year against the user's old job.
type Journey struct {
	TotalProfit    float64
	TotalHours     float64
	DaysWorked     int
	ProfitableDays int
	LosingDays     int
	DaysOver1K     int

	AvgDailyProfit      float64 // over the full 365-slot year
	AvgHoursPerDay      float64 // over days actually worked
	EffectiveHourlyRate float64

	OldHourlyRate       float64
	OldYearlyIncome     float64
	ProjectionHours     float64 // hours/day assumed for projections
	AnnualProjection    float64
	DaysToSurpassOldJob float64 // +Inf when the current rate earns nothing
}

// ComputeJourney derives the old-job comparison from the snapshot.
func ComputeJourney(snap *portfolio.Snapshot) Journey {
	j := Journey{OldHourlyRate: snap.OldHourlySalary}

	for _, d := range snap.Days {
		j.TotalProfit += d.Profit
		j.TotalHours += d.Hours
		if d.Hours > 0 {
			j.DaysWorked++
		}
		switch {
		case d.Profit > 0:
			j.ProfitableDays++
		case d.Profit < 0:
			j.LosingDays++
		}
		if d.Profit > 1000 {
			j.DaysOver1K++
		}
	}

	j.AvgDailyProfit = j.TotalProfit / portfolio.YearDays
	if j.TotalHours > 0 {
		j.EffectiveHourlyRate = j.TotalProfit / j.TotalHours
	}
	if j.DaysWorked > 0 {
		j.AvgHoursPerDay = j.TotalHours / float64(j.DaysWorked)
	}

	j.OldYearlyIncome = snap.OldHourlySalary * workWeekHours * workYearWeeks

	j.ProjectionHours = math.Max(projectionFloor, j.AvgHoursPerDay)
	j.AnnualProjection = j.EffectiveHourlyRate * j.ProjectionHours * portfolio.YearDays

	dailyRate := j.EffectiveHourlyRate * j.ProjectionHours
	if dailyRate > 0 {
		j.DaysToSurpassOldJob = math.Ceil((j.OldYearlyIncome - j.TotalProfit) / dailyRate)
	} else {
		j.DaysToSurpassOldJob = math.Inf(1)
	}

	return j
}

// Quote picks the motivational tier for the current journey. Returns the
// headline and a supporting line.
func (j Journey) Quote() (string, string) {
	switch {
	case j.AvgDailyProfit > 1000:
		return "You're making over $1,000 per day. Let that sink in.",
			"Most people work a full week to make what you're averaging in a single day."
	case j.ProfitableDays > j.LosingDays:
		return "It's not a race. You're profitable, and that means you're on track.",
			"More winning days than losing days. You're building something sustainable."
	case j.TotalProfit > 0:
		return "Progress isn't linear. You're still net positive.",
			"Every profitable trader has rough patches. What matters is the long-term trend."
	default:
		return "This is part of the journey. Every master was once a beginner.",
			"Focus on learning, refining your strategy, and protecting your capital."
	}
}
