package analysis

import (
	"time"

	"StockScope/internal/model"
)

// levelBuffer keeps targets and stops at least 1% away from the current price.
const levelBuffer = 0.01

// PlanTrade combines the market trend, support/resistance levels and the
// caller's average entry price into a target/stop/action recommendation.
// buyDate is accepted for future cost-basis refinement but currently unused.
// An empty frame yields a nil plan.
func PlanTrade(f *Frame, avgPrice float64, buyDate *time.Time) *model.TradePlan {
	_ = buyDate
	if f.Empty() {
		return nil
	}

	current := f.Last().Close
	plPct := (current - avgPrice) / avgPrice * 100
	trend := MarketTrend(f)
	extrema := FindExtrema(f)

	// Only levels clear of the 1% buffer are eligible.
	var upper, lower []float64
	for _, r := range extrema.Resistances {
		if r > current*(1+levelBuffer) {
			upper = append(upper, r)
		}
	}
	for _, s := range extrema.Supports {
		if s < current*(1-levelBuffer) {
			lower = append(lower, s)
		}
	}

	// Targets: first three eligible resistances ascending; missing ones are
	// synthesized by +5% compounding. Cut-loss: nearest support below price.
	tp1 := current * 1.05
	if len(upper) > 0 {
		tp1 = upper[0]
	}
	tp2 := tp1 * 1.05
	if len(upper) > 1 {
		tp2 = upper[1]
	}
	tp3 := tp2 * 1.05
	if len(upper) > 2 {
		tp3 = upper[2]
	}
	cl := current * 0.95
	if len(lower) > 0 {
		cl = lower[len(lower)-1]
	}

	// Sanity overrides
	if tp1 <= current {
		tp1 = current * 1.05
	}
	if cl >= current {
		cl = current * 0.95
	}

	action, reason := decideAction(plPct, trend)

	return &model.TradePlan{
		CurrentPrice: current,
		AvgPrice:     avgPrice,
		PLPct:        plPct,
		Action:       action,
		Reason:       reason,
		MarketTrend:  trend,
		Targets:      model.Targets{TP1: tp1, TP2: tp2, TP3: tp3, CL: cl},
	}
}

// decideAction maps (profit-or-loss sign, trend) to an action and reason.
// The cases mirror an ordered decision matrix: anything not covered falls
// through to a generic HOLD.
func decideAction(plPct float64, trend model.Trend) (string, string) {
	action := "HOLD"
	reason := "Market condition supports holding."

	if plPct > 0 {
		switch trend {
		case model.TrendBearish, model.TrendDistribution:
			action = "TAKE PROFIT"
			reason = "Trend is weakening/bearish. Secure your gains."
		case model.TrendBullish:
			action = "HOLD"
			reason = "Trend is Bullish. Let your profit run."
		case model.TrendAccumulation:
			action = "HOLD"
			reason = "Price is stabilizing. Hold specific positions."
		}
		if plPct > 25 {
			action += " (Partially)"
			reason += " Consider taking partial profit at this high level."
		}
		return action, reason
	}

	switch trend {
	case model.TrendBearish:
		action = "CUT LOSS"
		reason = "Trend is Bearish. Minimize further losses."
	case model.TrendDistribution:
		action = "CUT LOSS"
		reason = "Distribution phase detected (Market Top). Exit now."
	case model.TrendAccumulation:
		action = "AVERAGE DOWN"
		reason = "Price is in accumulation zone. Consider buying more."
	case model.TrendBullish:
		if plPct > -7 {
			action = "HOLD"
			reason = "Minor pullback in Bullish trend."
		} else {
			action = "CUT LOSS"
			reason = "Loss exceeds risk threshold (-7%) despite trend."
		}
	}
	return action, reason
}
