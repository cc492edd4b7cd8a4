package analysis

import (
	"testing"

	"StockScope/internal/model"
)

func TestMarketTrend_ShortHistory(t *testing.T) {
	f := NewFrame(trendBars(100, 100, 1))
	if got := MarketTrend(f); got != model.TrendNeutral {
		t.Errorf("under 200 bars should classify Neutral, got %s", got)
	}
}

func TestMarketTrend_UndefinedSMA200(t *testing.T) {
	// 200 bars but the SMA 200 column left undefined.
	f := frameWithLast(200, lastValues{close: 100})
	if got := MarketTrend(f); got != model.TrendNeutral {
		t.Errorf("undefined SMA 200 should classify Neutral, got %s", got)
	}
}

func TestMarketTrend_Phases(t *testing.T) {
	tests := []struct {
		name string
		lv   lastValues
		want model.Trend
	}{
		{
			name: "bullish",
			lv: lastValues{
				close: 110,
				sma:   map[int]Value{20: value(104), 50: value(105), 200: value(100)},
				rsi:   value(55),
			},
			want: model.TrendBullish,
		},
		{
			name: "bearish",
			lv: lastValues{
				close: 90,
				sma:   map[int]Value{20: value(96), 50: value(95), 200: value(100)},
				rsi:   value(45),
			},
			want: model.TrendBearish,
		},
		{
			name: "accumulation on low rsi",
			lv: lastValues{
				close: 95,
				sma:   map[int]Value{20: value(100), 50: value(100), 200: value(100)},
				rsi:   value(35),
			},
			want: model.TrendAccumulation,
		},
		{
			name: "distribution on high rsi",
			lv: lastValues{
				close: 105,
				sma:   map[int]Value{20: value(100), 50: value(100), 200: value(100)},
				rsi:   value(75),
			},
			want: model.TrendDistribution,
		},
		{
			name: "neutral fallthrough",
			lv: lastValues{
				close: 105,
				sma:   map[int]Value{20: value(95), 50: value(100), 200: value(100)},
				rsi:   value(50),
			},
			want: model.TrendNeutral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frameWithLast(200, tt.lv)
			if got := MarketTrend(f); got != tt.want {
				t.Errorf("MarketTrend = %s, want %s", got, tt.want)
			}
		})
	}
}

// Bullish must win over distribution when both predicates hold.
func TestMarketTrend_RuleOrder(t *testing.T) {
	f := frameWithLast(200, lastValues{
		close: 110,
		sma:   map[int]Value{20: value(108), 50: value(105), 200: value(100)},
		rsi:   value(80),
	})
	if got := MarketTrend(f); got != model.TrendBullish {
		t.Errorf("bullish rule should match first, got %s", got)
	}
}
