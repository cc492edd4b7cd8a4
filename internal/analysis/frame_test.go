package analysis

import (
	"testing"
	"time"

	"StockScope/internal/model"
)

// flatBars builds n identical daily bars at the given close.
func flatBars(n int, price float64) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: t0.AddDate(0, 0, i),
			Open: price, High: price, Low: price, Close: price,
			Volume: 1000,
		}
	}
	return bars
}

// trendBars builds n daily bars whose close walks from start by step per bar.
func trendBars(n int, start, step float64) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		c := start + step*float64(i)
		bars[i] = model.OHLCV{
			Time: t0.AddDate(0, 0, i),
			Open: c, High: c, Low: c, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

// lastValues describes the final bar's indicator snapshot for tests that
// exercise the classifiers directly, bypassing the column computation.
type lastValues struct {
	close float64
	sma   map[int]Value
	rsi   Value
	k, d  Value
}

// frameWithLast builds an n-bar frame whose final indicator values are set
// from lv. All earlier positions stay undefined.
func frameWithLast(n int, lv lastValues) *Frame {
	bars := flatBars(n, lv.close)
	f := &Frame{
		Bars: bars,
		SMA:  make(map[int][]Value, len(SMAPeriods)),
		RSI:  make([]Value, n),
		K:    make([]Value, n),
		D:    make([]Value, n),
	}
	for _, p := range SMAPeriods {
		col := make([]Value, n)
		if v, ok := lv.sma[p]; ok {
			col[n-1] = v
		}
		f.SMA[p] = col
	}
	f.RSI[n-1] = lv.rsi
	f.K[n-1] = lv.k
	f.D[n-1] = lv.d
	return f
}

func TestNewFrame_Empty(t *testing.T) {
	f := NewFrame(nil)
	if !f.Empty() {
		t.Fatal("expected empty frame")
	}
	if len(f.RSI) != 0 || len(f.K) != 0 {
		t.Error("expected empty indicator columns")
	}
	for _, p := range SMAPeriods {
		if len(f.SMA[p]) != 0 {
			t.Errorf("expected empty SMA %d column", p)
		}
	}
}

func TestNewFrame_ColumnLengths(t *testing.T) {
	f := NewFrame(trendBars(60, 100, 0.5))
	for _, p := range SMAPeriods {
		if got := len(f.SMA[p]); got != 60 {
			t.Errorf("SMA %d column length = %d, want 60", p, got)
		}
	}
	if len(f.RSI) != 60 || len(f.K) != 60 || len(f.D) != 60 {
		t.Error("indicator column length mismatch")
	}
}

func TestLastSnapshot(t *testing.T) {
	f := NewFrame(trendBars(30, 100, 1))
	snap := f.LastSnapshot()
	if snap.Close != 129 {
		t.Errorf("snapshot close = %v, want 129", snap.Close)
	}
	if !snap.SMA[10].Valid || !snap.SMA[20].Valid {
		t.Error("expected SMA 10 and 20 defined at bar 30")
	}
	if snap.SMA[50].Valid {
		t.Error("SMA 50 should be undefined with 30 bars")
	}
}
