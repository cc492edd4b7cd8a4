package analysis

import (
	"testing"
	"time"

	"StockScope/internal/model"
)

func bar(open, high, low, close float64) model.OHLCV {
	return model.OHLCV{
		Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Open: open, High: high, Low: low, Close: close,
		Volume: 1000,
	}
}

func TestDetectPatterns_Doji(t *testing.T) {
	// Tiny body inside a wide range: Doji but not Hammer (long upper shadow).
	f := NewFrame([]model.OHLCV{bar(100, 105, 95, 100.5)})
	p := DetectPatterns(f)
	if !p[PatternDoji] {
		t.Error("expected Doji for 0.5 body on a 10 point range")
	}
	if p[PatternHammer] {
		t.Error("long upper shadow should rule out Hammer")
	}
}

func TestDetectPatterns_Hammer(t *testing.T) {
	// Small body, long lower shadow, nearly no upper shadow.
	f := NewFrame([]model.OHLCV{bar(100, 100.52, 98.5, 100.5)})
	p := DetectPatterns(f)
	if !p[PatternHammer] {
		t.Error("expected Hammer")
	}
	if p[PatternDoji] {
		t.Error("body over 10 percent of range should rule out Doji")
	}
}

func TestDetectPatterns_Engulfing(t *testing.T) {
	prev := bar(102, 102.5, 99.5, 100) // bearish
	last := bar(99, 103.5, 98.5, 103)  // bullish, engulfs prev body
	p := DetectPatterns(NewFrame([]model.OHLCV{prev, last}))
	if !p[PatternBullishEngulfing] {
		t.Error("expected Bullish Engulfing")
	}
	if p[PatternBearishEngulfing] {
		t.Error("did not expect Bearish Engulfing")
	}

	// Mirror image.
	prev = bar(100, 102.5, 99.5, 102) // bullish
	last = bar(103, 103.5, 98.5, 99)  // bearish, engulfs prev body
	p = DetectPatterns(NewFrame([]model.OHLCV{prev, last}))
	if !p[PatternBearishEngulfing] {
		t.Error("expected Bearish Engulfing")
	}
	if p[PatternBullishEngulfing] {
		t.Error("did not expect Bullish Engulfing")
	}
}

func TestDetectPatterns_SingleBar(t *testing.T) {
	p := DetectPatterns(NewFrame([]model.OHLCV{bar(100, 101, 99, 100.2)}))
	if _, ok := p[PatternBullishEngulfing]; ok {
		t.Error("engulfing flags need a previous bar")
	}
	if _, ok := p[PatternBearishEngulfing]; ok {
		t.Error("engulfing flags need a previous bar")
	}
	if _, ok := p[PatternDoji]; !ok {
		t.Error("single-bar patterns should still be reported")
	}
}

func TestDetectPatterns_EmptyFrame(t *testing.T) {
	p := DetectPatterns(NewFrame(nil))
	if len(p) != 0 {
		t.Errorf("expected empty map, got %v", p)
	}
}
