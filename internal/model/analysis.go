package model

// Trend is the market phase label derived from the latest indicator snapshot.
type Trend string

const (
	TrendBullish      Trend = "Bullish"
	TrendBearish      Trend = "Bearish"
	TrendAccumulation Trend = "Accumulation"
	TrendDistribution Trend = "Distribution"
	TrendNeutral      Trend = "Neutral"
)

// Recommendation is the discrete buy/sell label mapped from a score.
type Recommendation string

const (
	StrongBuy  Recommendation = "STRONG BUY"
	Buy        Recommendation = "BUY"
	Neutral    Recommendation = "NEUTRAL"
	Sell       Recommendation = "SELL"
	StrongSell Recommendation = "STRONG SELL"
)

// MATrend is the per-moving-average breakdown entry of a score result.
type MATrend struct {
	Value  float64 `json:"value"`
	Status string  `json:"status"` // "Above" or "Below" relative to current price
}

// ScoreResult is the output of the recommendation scorer.
type ScoreResult struct {
	Score          int
	Recommendation Recommendation
	Reasons        []string
	MATrends       map[string]MATrend // keyed "MA_10", "MA_20", ...
}

// ExtremaSet holds support and resistance price levels, each sorted ascending.
type ExtremaSet struct {
	Resistances []float64
	Supports    []float64
}

// Targets holds take-profit and cut-loss price levels of a trade plan.
type Targets struct {
	TP1 float64 `json:"tp1"`
	TP2 float64 `json:"tp2"`
	TP3 float64 `json:"tp3"`
	CL  float64 `json:"cl"`
}

// TradePlan is the position-aware action recommendation.
type TradePlan struct {
	CurrentPrice float64 `json:"current_price"`
	AvgPrice     float64 `json:"avg_price"`
	PLPct        float64 `json:"pl_pct"`
	Action       string  `json:"action"`
	Reason       string  `json:"reason"`
	MarketTrend  Trend   `json:"market_trend"`
	Targets      Targets `json:"targets"`
}

// ForecastPoint is one projected price on a future calendar date.
type ForecastPoint struct {
	Time  string  `json:"time"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// SeasonalPoint is one close observation normalized to a month-day label.
type SeasonalPoint struct {
	Label string  `json:"label"` // "M-D", no zero padding
	Value float64 `json:"value"`
}
