package recorder

import "StockScope/internal/model"

// AnalysisRecord holds one technicals/recommendation evaluation.
type AnalysisRecord struct {
	Symbol         string
	Price          float64
	Score          int
	Recommendation model.Recommendation
	Trend          model.Trend
	RSI            float64
	SMA50          float64
	SMA200         float64
	Source         string // "api" or "scan"
}

// TradePlanRecord holds one trade plan evaluation.
type TradePlanRecord struct {
	Symbol       string
	AvgPrice     float64
	CurrentPrice float64
	PLPct        float64
	Action       string
	Trend        model.Trend
	TP1          float64
	TP2          float64
	TP3          float64
	CL           float64
}

// Recorder persists evaluation history for later analysis.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	RecordTradePlan(rec *TradePlanRecord) error
	Close() error
}
