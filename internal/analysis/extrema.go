package analysis

import (
	"sort"

	"StockScope/internal/model"
)

// extremaOrder is the neighborhood half-width for local extrema detection:
// a point must be strictly greater (or less) than every point within this
// many bars on each side.
const extremaOrder = 5

// FindExtrema scans the trailing trainWindow bars for local maxima of High
// (resistances) and local minima of Low (supports). Only the price levels are
// kept, each list sorted ascending.
func FindExtrema(f *Frame) model.ExtremaSet {
	bars := tail(f.Bars, trainWindow)
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		highs[i] = b.High
		lows[i] = b.Low
	}

	set := model.ExtremaSet{
		Resistances: localExtrema(highs, extremaOrder, func(a, b float64) bool { return a > b }),
		Supports:    localExtrema(lows, extremaOrder, func(a, b float64) bool { return a < b }),
	}
	sort.Float64s(set.Resistances)
	sort.Float64s(set.Supports)
	return set
}

// localExtrema returns the values at indices that strictly dominate every
// in-range neighbor within order bars on each side. Neighbors past the edges
// are not compared, but the first and last bar themselves never qualify.
func localExtrema(vals []float64, order int, dominates func(a, b float64) bool) []float64 {
	var out []float64
	for i, v := range vals {
		if i == 0 || i == len(vals)-1 {
			continue
		}
		isExtremum := true
		for j := i - order; j <= i+order; j++ {
			if j == i || j < 0 || j >= len(vals) {
				continue
			}
			if !dominates(v, vals[j]) {
				isExtremum = false
				break
			}
		}
		if isExtremum {
			out = append(out, v)
		}
	}
	return out
}
