package analysis

// Pattern flag names as they appear in API responses.
const (
	PatternDoji             = "Doji"
	PatternHammer           = "Hammer"
	PatternBullishEngulfing = "Bullish Engulfing"
	PatternBearishEngulfing = "Bearish Engulfing"
)

// DetectPatterns classifies the most recent one or two bars into candle
// pattern flags. The engulfing flags are present only when a previous bar
// exists; an empty frame yields an empty map.
func DetectPatterns(f *Frame) map[string]bool {
	patterns := make(map[string]bool)
	if f.Empty() {
		return patterns
	}

	last := f.Last()
	body := last.Body()
	full := last.Range()

	patterns[PatternDoji] = body <= full*0.1

	lowerShadow := min(last.Open, last.Close) - last.Low
	upperShadow := last.High - max(last.Open, last.Close)
	patterns[PatternHammer] = body <= full*0.3 &&
		lowerShadow >= 2*body &&
		upperShadow <= 0.1*body

	if len(f.Bars) > 1 {
		prev := f.Bars[len(f.Bars)-2]
		patterns[PatternBullishEngulfing] = prev.Bearish() && last.Bullish() &&
			last.Open < prev.Close && last.Close > prev.Open
		patterns[PatternBearishEngulfing] = prev.Bullish() && last.Bearish() &&
			last.Open > prev.Close && last.Close < prev.Open
	}

	return patterns
}
