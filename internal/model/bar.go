package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Bullish reports whether the bar closed above its open.
func (b OHLCV) Bullish() bool { return b.Close > b.Open }

// Bearish reports whether the bar closed below its open.
func (b OHLCV) Bearish() bool { return b.Close < b.Open }

// Body returns the absolute size of the candle body.
func (b OHLCV) Body() float64 {
	body := b.Close - b.Open
	if body < 0 {
		body = -body
	}
	return body
}

// Range returns the full high-to-low extent of the bar.
func (b OHLCV) Range() float64 { return b.High - b.Low }
