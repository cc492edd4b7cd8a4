package analysis

import (
	"testing"
	"time"

	"StockScope/internal/model"
)

func seasonalBar(y int, m time.Month, d int, close float64) model.OHLCV {
	return model.OHLCV{
		Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Open: close, High: close, Low: close, Close: close,
	}
}

func TestSeasonal_GroupsByYear(t *testing.T) {
	bars := []model.OHLCV{
		seasonalBar(2023, time.March, 7, 90),
		seasonalBar(2024, time.January, 5, 95),
		seasonalBar(2025, time.January, 5, 100),
		seasonalBar(2025, time.June, 30, 110),
	}
	out := Seasonal(&Frame{Bars: bars})

	if len(out) != 3 {
		t.Fatalf("expected 3 years, got %d: %v", len(out), out)
	}
	if len(out[2025]) != 2 || len(out[2024]) != 1 || len(out[2023]) != 1 {
		t.Errorf("unexpected grouping: %v", out)
	}
	if out[2025][0].Label != "1-5" {
		t.Errorf("label = %q, want unpadded \"1-5\"", out[2025][0].Label)
	}
	if out[2025][1].Value != 110 {
		t.Errorf("value = %v, want 110", out[2025][1].Value)
	}
}

func TestSeasonal_OmitsOldAndMissingYears(t *testing.T) {
	bars := []model.OHLCV{
		seasonalBar(2021, time.May, 1, 80), // older than the 3-year window
		seasonalBar(2025, time.May, 1, 100),
	}
	out := Seasonal(&Frame{Bars: bars})

	if _, ok := out[2021]; ok {
		t.Error("years before the window should be omitted")
	}
	if _, ok := out[2024]; ok {
		t.Error("years without data should be omitted")
	}
	if len(out[2025]) != 1 {
		t.Errorf("expected one 2025 point, got %v", out)
	}
}

func TestSeasonal_EmptyFrame(t *testing.T) {
	if out := Seasonal(NewFrame(nil)); len(out) != 0 {
		t.Errorf("expected empty map, got %v", out)
	}
}
