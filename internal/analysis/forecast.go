package analysis

import (
	"StockScope/internal/model"
)

// trainWindow is the number of trailing bars (~6 months of trading days)
// used to fit the forecast trend and to scan for support/resistance.
const trainWindow = 126

// minTrainBars is the minimum history required to fit a trend line.
const minTrainBars = 10

// Forecast fits an ordinary-least-squares line over the closes of the last
// trainWindow bars and projects it forward the given number of calendar days
// from the final bar's date. Projection steps by calendar days, so dates may
// land on weekends. Projected prices are floored at zero. Too little history
// yields an empty (nil) forecast.
func Forecast(f *Frame, days int) []model.ForecastPoint {
	if f.Empty() {
		return nil
	}
	bars := tail(f.Bars, trainWindow)
	if len(bars) < minTrainBars {
		return nil
	}

	// OLS fit on (index, close): y = m*x + c
	n := float64(len(bars))
	var sumX, sumY, sumXY, sumXX float64
	for i, b := range bars {
		x := float64(i)
		sumX += x
		sumY += b.Close
		sumXY += x * b.Close
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	m := (n*sumXY - sumX*sumY) / denom
	c := (sumY - m*sumX) / n

	lastDate := f.Last().Time
	lastX := float64(len(bars) - 1)

	out := make([]model.ForecastPoint, 0, days)
	for i := 1; i <= days; i++ {
		y := m*(lastX+float64(i)) + c
		if y < 0 {
			y = 0
		}
		out = append(out, model.ForecastPoint{
			Time:  lastDate.AddDate(0, 0, i).Format("2006-01-02"),
			Value: y,
		})
	}
	return out
}

func tail(bars []model.OHLCV, n int) []model.OHLCV {
	if len(bars) > n {
		return bars[len(bars)-n:]
	}
	return bars
}
