package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockScope/internal/model"
)

// ScanAlert is one strong signal found by the daily watchlist scan.
type ScanAlert struct {
	Symbol         string
	Price          float64
	Score          int
	Recommendation model.Recommendation
	Trend          model.Trend
}

// FormatScanReport formats the daily scan's strong signals into a Telegram message.
func FormatScanReport(alerts []ScanAlert) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>StockScope Daily Scan</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("%s: <b>%s</b> (score %d, trend %s) @ %.2f\n",
			a.Symbol, a.Recommendation, a.Score, a.Trend, a.Price))
	}
	return b.String()
}
