// Package scheduler runs the daily watchlist scan: it walks the ticker
// catalog, evaluates trend and recommendation per symbol, records the results
// and pushes Telegram alerts for strong signals.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"StockScope/internal/analysis"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/notifier"
	"StockScope/internal/recorder"
	"StockScope/internal/tickers"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  collector.Fetcher
	Catalog  *tickers.Catalog
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, fetcher collector.Fetcher, cat *tickers.Catalog, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Fetcher:  fetcher,
		Catalog:  cat,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily scan task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyScan); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
	}
	return nil
}

// Start begins the cron loop.
func (s *Scheduler) Start() { s.Cron.Start() }

// Stop stops the cron loop.
func (s *Scheduler) Stop() { s.Cron.Stop() }

// RunScanNow triggers the daily scan immediately (used by RUN_ON_START).
func (s *Scheduler) RunScanNow() { s.dailyScan() }

// dailyScan evaluates every watchlist symbol. Failures on individual symbols
// are logged and skipped so one bad ticker cannot abort the scan.
func (s *Scheduler) dailyScan() {
	symbols := s.Catalog.Symbols()
	if len(symbols) == 0 {
		log.Println("[INFO] daily scan: empty watchlist, nothing to do")
		return
	}
	log.Printf("[INFO] daily scan: evaluating %d symbols", len(symbols))

	var alerts []notifier.ScanAlert
	for _, symbol := range symbols {
		select {
		case <-s.Ctx.Done():
			log.Println("[INFO] daily scan canceled")
			return
		default:
		}

		bars, err := s.Fetcher.FetchBars(symbol, "1y", "1d")
		if err != nil {
			log.Printf("[WARN] daily scan: fetch %s: %v", symbol, err)
			continue
		}

		frame := analysis.NewFrame(bars)
		trend := analysis.MarketTrend(frame)
		result := analysis.Recommend(frame, nil)
		snap := frame.LastSnapshot()

		if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
			Symbol:         symbol,
			Price:          snap.Close,
			Score:          result.Score,
			Recommendation: result.Recommendation,
			Trend:          trend,
			RSI:            snap.RSI.Val,
			SMA50:          snap.SMA[50].Val,
			SMA200:         snap.SMA[200].Val,
			Source:         "scan",
		}); err != nil {
			log.Printf("[WARN] daily scan: record %s: %v", symbol, err)
		}

		if result.Recommendation == model.StrongBuy || result.Recommendation == model.StrongSell {
			alerts = append(alerts, notifier.ScanAlert{
				Symbol:         symbol,
				Price:          snap.Close,
				Score:          result.Score,
				Recommendation: result.Recommendation,
				Trend:          trend,
			})
		}
	}

	log.Printf("[INFO] daily scan done: %d strong signals", len(alerts))
	if len(alerts) > 0 && s.Notifier.Enabled() {
		if err := s.Notifier.Send(notifier.FormatScanReport(alerts)); err != nil {
			log.Printf("[WARN] daily scan: telegram send: %v", err)
		}
	}
}
