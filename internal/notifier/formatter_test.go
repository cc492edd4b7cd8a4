package notifier

import (
	"strings"
	"testing"

	"StockScope/internal/model"
)

func TestFormatScanReport(t *testing.T) {
	msg := FormatScanReport([]ScanAlert{
		{Symbol: "BBCA.JK", Price: 9150, Score: 85, Recommendation: model.StrongBuy, Trend: model.TrendBullish},
		{Symbol: "GOTO.JK", Price: 62, Score: 15, Recommendation: model.StrongSell, Trend: model.TrendBearish},
	})

	for _, want := range []string{"BBCA.JK", "STRONG BUY", "GOTO.JK", "STRONG SELL", "9150.00"} {
		if !strings.Contains(msg, want) {
			t.Errorf("report missing %q:\n%s", want, msg)
		}
	}
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	tn := NewTelegramNotifier("", "", "")
	if tn.Enabled() {
		t.Error("empty token should disable the notifier")
	}
	if err := tn.Send("hello"); err != nil {
		t.Errorf("disabled notifier should drop messages silently, got %v", err)
	}
}
