package analysis

import (
	"fmt"

	"StockScope/internal/model"
)

// Recommend combines the final bar's indicator snapshot with optional
// fundamentals into a 0-100 score, a discrete label and a reasons list.
// Adjustments are applied in a fixed order; each one appends its own
// human-readable reason. A nil fund scores on technical factors only.
func Recommend(f *Frame, fund *model.Fundamentals) model.ScoreResult {
	if f.Empty() {
		return model.ScoreResult{Score: 50, Recommendation: model.Neutral, Reasons: []string{}}
	}

	snap := f.LastSnapshot()
	score := 50
	reasons := []string{}

	// 1. Moving average trend. An undefined SMA makes the bullish predicate
	// false, so short histories fall into the bearish branch.
	if gt(snap.SMA[50], snap.SMA[200]) {
		score += 10
		reasons = append(reasons, "Trend Bullish (SMA50 > SMA200)")
	} else {
		score -= 10
		reasons = append(reasons, "Trend Bearish (SMA50 < SMA200)")
	}
	if snap.SMA[200].Valid && snap.Close > snap.SMA[200].Val {
		score += 10
		reasons = append(reasons, "Price above SMA200")
	} else {
		score -= 10
		reasons = append(reasons, "Price below SMA200")
	}

	// 2. RSI
	switch {
	case snap.RSI.Valid && snap.RSI.Val < 30:
		score += 20
		reasons = append(reasons, "RSI Oversold (<30) - Potential Buy")
	case snap.RSI.Valid && snap.RSI.Val > 70:
		score -= 20
		reasons = append(reasons, "RSI Overbought (>70) - Potential Sell")
	case snap.RSI.Valid:
		reasons = append(reasons, fmt.Sprintf("RSI Neutral (%.2f)", snap.RSI.Val))
	default:
		reasons = append(reasons, "RSI Neutral (n/a)")
	}

	// 3. Stochastic. Missing K/D default to 50, which triggers neither branch.
	k, d := orDefault(snap.K, 50), orDefault(snap.D, 50)
	if k < 20 && d < 20 && k > d {
		score += 15
		reasons = append(reasons, "Stochastic Oversold Cross Up")
	} else if k > 80 && d > 80 && k < d {
		score -= 15
		reasons = append(reasons, "Stochastic Overbought Cross Down")
	}

	// 4. Fundamental catalysts, when the collaborator supplied them.
	if fund != nil {
		score, reasons = applyFundamentals(*fund, score, reasons)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return model.ScoreResult{
		Score:          score,
		Recommendation: labelFor(score),
		Reasons:        reasons,
		MATrends:       maTrends(snap),
	}
}

func applyFundamentals(fund model.Fundamentals, score int, reasons []string) (int, []string) {
	if pe := fund.PE(); pe != 0 {
		if pe < 15 {
			score += 5
			reasons = append(reasons, fmt.Sprintf("Fundamental: Undervalued (P/E %.1f < 15)", pe))
		} else if pe > 50 {
			score -= 5
			reasons = append(reasons, fmt.Sprintf("Fundamental: Overvalued (P/E %.1f > 50)", pe))
		}
	}
	if fund.MarketCap > 100_000_000_000 {
		score += 2 // slight stability bias for mega caps, no reason text
	}
	if fund.RevenueGrowth > 0.20 {
		score += 5
		reasons = append(reasons, fmt.Sprintf("Catalyst: High Revenue Growth (%.1f%%)", fund.RevenueGrowth*100))
	}
	if fund.ProfitMargin > 0.20 {
		reasons = append(reasons, fmt.Sprintf("Fundamental: High Profit Margin (%.1f%%)", fund.ProfitMargin*100))
	}
	if fund.CurrentPrice != 0 && fund.TargetMeanPrice != 0 {
		upside := (fund.TargetMeanPrice - fund.CurrentPrice) / fund.CurrentPrice
		if upside > 0.20 {
			score += 5
			reasons = append(reasons, fmt.Sprintf("Catalyst: Analyst Upside Potential (%.1f%%)", upside*100))
		}
	}
	return score, reasons
}

// labelFor maps a clamped score to its recommendation label. The thresholds
// overlap (85 satisfies both >=80 and >=60), so the order is load-bearing.
func labelFor(score int) model.Recommendation {
	switch {
	case score >= 80:
		return model.StrongBuy
	case score >= 60:
		return model.Buy
	case score <= 20:
		return model.StrongSell
	case score <= 40:
		return model.Sell
	default:
		return model.Neutral
	}
}

// maTrends builds the per-moving-average breakdown, skipping undefined MAs.
func maTrends(snap Snapshot) map[string]model.MATrend {
	out := make(map[string]model.MATrend)
	for _, p := range []int{10, 20, 60, 100, 200} {
		v := snap.SMA[p]
		if !v.Valid {
			continue
		}
		status := "Below"
		if snap.Close > v.Val {
			status = "Above"
		}
		out[fmt.Sprintf("MA_%d", p)] = model.MATrend{Value: v.Val, Status: status}
	}
	return out
}

func gt(a, b Value) bool { return a.Valid && b.Valid && a.Val > b.Val }

func orDefault(v Value, def float64) float64 {
	if v.Valid {
		return v.Val
	}
	return def
}
