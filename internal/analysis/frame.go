// Package analysis implements the indicator pipeline: moving averages, RSI,
// stochastic oscillator, candle patterns, trend classification, scoring,
// forecasting and support/resistance detection. Everything here is a pure
// function of the input bars; a Frame is built once per request and never
// mutated afterwards.
package analysis

import "StockScope/internal/model"

// Value is an indicator value that is undefined until enough history exists.
// Undefined values are modeled explicitly instead of NaN sentinels so that
// downstream rules can branch on Valid.
type Value struct {
	Val   float64
	Valid bool
}

func value(v float64) Value { return Value{Val: v, Valid: true} }

// SMAPeriods is the fixed set of simple-moving-average windows computed per bar.
var SMAPeriods = []int{10, 20, 50, 60, 100, 200}

// Frame is a bar series augmented with per-bar indicator columns. All column
// slices have the same length as Bars.
type Frame struct {
	Bars []model.OHLCV
	SMA  map[int][]Value
	RSI  []Value
	K    []Value // stochastic %K
	D    []Value // stochastic %D
}

// NewFrame computes all indicator columns over the given bars. An empty input
// yields an empty frame, not an error.
func NewFrame(bars []model.OHLCV) *Frame {
	f := &Frame{
		Bars: bars,
		SMA:  make(map[int][]Value, len(SMAPeriods)),
	}
	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}
	for _, p := range SMAPeriods {
		f.SMA[p] = smaSeries(closes, p)
	}
	f.RSI = rsiSeries(closes, 14)
	f.K, f.D = stochSeries(highs, lows, closes, 14, 3, 3)
	return f
}

// Empty reports whether the frame holds no bars.
func (f *Frame) Empty() bool { return len(f.Bars) == 0 }

// Last returns the most recent bar.
func (f *Frame) Last() model.OHLCV { return f.Bars[len(f.Bars)-1] }

// Snapshot holds the final bar's indicator values, the input to the trend
// classifier and the recommendation scorer.
type Snapshot struct {
	Close float64
	SMA   map[int]Value
	RSI   Value
	K     Value
	D     Value
}

// LastSnapshot extracts the indicator values of the final bar.
func (f *Frame) LastSnapshot() Snapshot {
	i := len(f.Bars) - 1
	snap := Snapshot{
		Close: f.Bars[i].Close,
		SMA:   make(map[int]Value, len(SMAPeriods)),
		RSI:   f.RSI[i],
		K:     f.K[i],
		D:     f.D[i],
	}
	for _, p := range SMAPeriods {
		snap.SMA[p] = f.SMA[p][i]
	}
	return snap
}
