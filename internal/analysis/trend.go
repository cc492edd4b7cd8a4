package analysis

import "StockScope/internal/model"

// MarketTrend classifies the final bar's indicator snapshot into a market
// phase. The rules below overlap, so they are evaluated strictly top to
// bottom and the first match wins; do not reorder them.
//
// Fewer than 200 bars (no valid SMA 200) always yields Neutral.
func MarketTrend(f *Frame) model.Trend {
	if len(f.Bars) < 200 {
		return model.TrendNeutral
	}
	snap := f.LastSnapshot()
	sma200 := snap.SMA[200]
	if !sma200.Valid {
		return model.TrendNeutral
	}

	price := snap.Close
	sma20 := snap.SMA[20].Val
	sma50 := snap.SMA[50].Val
	rsi := snap.RSI.Val

	switch {
	case price > sma200.Val && sma50 > sma200.Val:
		return model.TrendBullish
	case price < sma200.Val && sma50 < sma200.Val:
		return model.TrendBearish
	case price < sma200.Val && (rsi < 40 || sma50 > sma20):
		return model.TrendAccumulation
	case price > sma200.Val && (rsi > 70 || sma50 < sma20):
		return model.TrendDistribution
	default:
		return model.TrendNeutral
	}
}
