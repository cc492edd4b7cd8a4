package analysis

import (
	"fmt"

	"StockScope/internal/model"
)

// Seasonal groups closes by calendar year for the last three years so they
// can be overlaid on a shared month-day axis. Years with no data are omitted.
func Seasonal(f *Frame) map[int][]model.SeasonalPoint {
	out := make(map[int][]model.SeasonalPoint)
	if f.Empty() {
		return out
	}

	currentYear := f.Last().Time.Year()
	for _, year := range []int{currentYear, currentYear - 1, currentYear - 2} {
		var points []model.SeasonalPoint
		for _, b := range f.Bars {
			if b.Time.Year() != year {
				continue
			}
			points = append(points, model.SeasonalPoint{
				Label: fmt.Sprintf("%d-%d", int(b.Time.Month()), b.Time.Day()),
				Value: b.Close,
			})
		}
		if len(points) > 0 {
			out[year] = points
		}
	}
	return out
}
