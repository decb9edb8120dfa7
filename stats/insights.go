package stats

import (
	"fmt"

	"github.com/rustyeddy/tradebook/trade"
)

// Kind classifies an insight.
type Kind string

const (
	Positive Kind = "positive"
	Warning  Kind = "warning"
	Negative Kind = "negative"
)

// Insight is one short behavioral observation.
type Insight struct {
	Kind Kind
	Text string
}

const (
	insightMinTrades = 3
	maxInsights      = 4

	dcaMinTrades    = 3
	recencyWindow   = 5
	hotStreakWins   = 4
	coldStreakWins  = 1
	roundtripMinHit = 2
)

// ruleInput carries the precomputed aggregates the rules read.
type ruleInput struct {
	trades []trade.Record
	guide  *Guide
	stats  *Statistics
}

// rule is one independent insight predicate. Rules are evaluated in declared
// priority order; each may or may not fire.
type rule func(ruleInput) (Insight, bool)

var rules = []rule{
	prematureExitRule,
	roundtripRule,
	dcaRule,
	recencyRule,
}

// ComputeInsights evaluates the fixed rule list over the chronological trade
// list. Empty below three trades; capped at four insights; never re-ranked.
func ComputeInsights(trades []trade.Record, guide *Guide) []Insight {
	insights := []Insight{}
	if len(trades) < insightMinTrades || guide == nil {
		return insights
	}

	in := ruleInput{
		trades: trades,
		guide:  guide,
		stats:  ComputeTrades(trades),
	}

	for _, r := range rules {
		if len(insights) >= maxInsights {
			break
		}
		if ins, ok := r(in); ok {
			insights = append(insights, ins)
		}
	}
	return insights
}

// prematureExitRule fires when realized wins capture less than half the
// recommended take-profit.
func prematureExitRule(in ruleInput) (Insight, bool) {
	tp := in.guide.OptimalTakeProfit
	avgWin := in.stats.AvgWinPercent
	if tp > 0 && avgWin > 0 && avgWin < 0.5*tp {
		return Insight{
			Kind: Warning,
			Text: fmt.Sprintf("You exit winners early: average win %.1f%% vs a %.1f%% optimal take-profit. Try holding longer.", avgWin, tp),
		}, true
	}
	return Insight{}, false
}

// roundtripRule fires on repeated peak-then-loss trades.
func roundtripRule(in ruleInput) (Insight, bool) {
	if in.guide.RoundtripCount >= roundtripMinHit && in.guide.AvgRoundtripPeak > 0 {
		return Insight{
			Kind: Warning,
			Text: fmt.Sprintf("%d trades peaked in profit but closed at a loss. Set a take-profit near %.1f%% to lock gains in.", in.guide.RoundtripCount, in.guide.AvgRoundtripPeak*takeProfitDiscount),
		}, true
	}
	return Insight{}, false
}

// dcaRule judges whether averaging in is helping, once enough DCA history
// exists.
func dcaRule(in ruleInput) (Insight, bool) {
	if in.guide.DCATrades < dcaMinTrades {
		return Insight{}, false
	}
	if in.guide.DCAHelps {
		return Insight{
			Kind: Positive,
			Text: fmt.Sprintf("DCA is working for you across %d trades: keep scaling into positions.", in.guide.DCATrades),
		}, true
	}
	return Insight{
		Kind: Negative,
		Text: fmt.Sprintf("DCA is hurting you across %d trades: averaging in has not improved wins or softened losses.", in.guide.DCATrades),
	}, true
}

// recencyRule looks at the last five trades for a hot or cold run.
func recencyRule(in ruleInput) (Insight, bool) {
	recent := in.trades
	if len(recent) > recencyWindow {
		recent = recent[len(recent)-recencyWindow:]
	}
	if len(recent) < recencyWindow {
		return Insight{}, false
	}

	wins := 0
	for _, t := range recent {
		if t.ActualProfit > 0 {
			wins++
		}
	}

	switch {
	case wins >= hotStreakWins:
		return Insight{
			Kind: Positive,
			Text: fmt.Sprintf("Hot streak: %d of your last %d trades were winners.", wins, recencyWindow),
		}, true
	case wins <= coldStreakWins:
		return Insight{
			Kind: Warning,
			Text: fmt.Sprintf("Cold streak: only %d of your last %d trades won. Consider sizing down until it turns.", wins, recencyWindow),
		}, true
	}
	return Insight{}, false
}
