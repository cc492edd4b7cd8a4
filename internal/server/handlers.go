package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"StockScope/internal/analysis"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

// allowedRanges maps the chart range query values accepted by the API.
var allowedRanges = map[string]bool{
	"1mo": true, "3mo": true, "6mo": true, "1y": true, "2y": true, "5y": true,
}

// fetchBars loads daily history for a ticker, mapping provider errors onto
// HTTP responses. Returns nil and false after writing the error response.
func (s *Server) fetchBars(w http.ResponseWriter, symbol, rng string) ([]model.OHLCV, bool) {
	bars, err := s.Fetcher.FetchBars(symbol, rng, "1d")
	if err != nil {
		if errors.Is(err, collector.ErrNotFound) {
			writeError(w, http.StatusNotFound, "stock data not found")
		} else {
			s.Metrics.UpstreamErrors.Inc()
			log.Printf("[WARN] fetch bars %s: %v", symbol, err)
			writeError(w, http.StatusBadGateway, "market data unavailable")
		}
		return nil, false
	}
	return bars, true
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	results, err := s.Fetcher.Search(q)
	if err != nil {
		// Search is best-effort: degrade to an empty list.
		s.Metrics.UpstreamErrors.Inc()
		log.Printf("[WARN] search %q: %v", q, err)
		results = nil
	}
	if results == nil {
		results = []model.SearchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) handleStockList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"stocks": s.Catalog.Entries()})
}

func (s *Server) handleMarketSummary(w http.ResponseWriter, r *http.Request) {
	idx := s.quoteBatch(s.Cfg.MarketSummary.IDX)
	nasdaq := s.quoteBatch(s.Cfg.MarketSummary.Nasdaq)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"idx":    idx,
		"nasdaq": nasdaq,
	})
}

// quoteBatch fetches latest quotes for a symbol list with bounded concurrency.
// Failed symbols are skipped; list order is preserved.
func (s *Server) quoteBatch(symbols []string) []model.Quote {
	results := make([]*model.Quote, len(symbols))
	sem := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// 5 days of closes so the previous close survives weekends.
			bars, err := s.Fetcher.FetchBars(symbol, "5d", "1d")
			if err != nil {
				s.Metrics.UpstreamErrors.Inc()
				log.Printf("[WARN] market summary: fetch %s: %v", symbol, err)
				return
			}
			if len(bars) < 2 {
				return
			}
			current := bars[len(bars)-1].Close
			prev := bars[len(bars)-2].Close
			if prev == 0 {
				return
			}
			change := current - prev
			results[i] = &model.Quote{
				Symbol:  symbol,
				Price:   current,
				Change:  change,
				PChange: change / prev * 100,
			}
		}(i, symbol)
	}
	wg.Wait()

	out := make([]model.Quote, 0, len(symbols))
	for _, q := range results {
		if q != nil {
			out = append(out, *q)
		}
	}
	return out
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	profile, err := s.Fetcher.FetchProfile(ticker)
	if err != nil {
		if errors.Is(err, collector.ErrNotFound) {
			writeError(w, http.StatusNotFound, "stock data not found")
		} else {
			s.Metrics.UpstreamErrors.Inc()
			log.Printf("[WARN] fetch profile %s: %v", ticker, err)
			writeError(w, http.StatusBadGateway, "market data unavailable")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":      ticker,
		"name":        profile.Name,
		"price":       safe(profile.Price),
		"sector":      orNA(profile.Sector),
		"industry":    orNA(profile.Industry),
		"description": orNA(profile.Description),
		"logo_url":    collector.LogoURL(profile.Website),
		"domain":      collector.Domain(profile.Website),
	})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

type maTrendDTO struct {
	Value  *float64 `json:"value"`
	Status string   `json:"status"`
}

func (s *Server) handleTechnicals(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	// 1y of history is enough for SMA 200.
	bars, ok := s.fetchBars(w, ticker, "1y")
	if !ok {
		return
	}

	frame := analysis.NewFrame(bars)
	patterns := analysis.DetectPatterns(frame)
	trend := analysis.MarketTrend(frame)

	// Fundamentals enrichment is best-effort: on failure the recommendation
	// is computed from technical factors only.
	fund, err := s.Fetcher.FetchFundamentals(ticker)
	if err != nil {
		s.Metrics.UpstreamErrors.Inc()
		log.Printf("[WARN] fundamentals %s unavailable, scoring technicals only: %v", ticker, err)
		fund = nil
	}
	result := analysis.Recommend(frame, fund)
	snap := frame.LastSnapshot()

	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		Symbol:         ticker,
		Price:          snap.Close,
		Score:          result.Score,
		Recommendation: result.Recommendation,
		Trend:          trend,
		RSI:            snap.RSI.Val,
		SMA50:          snap.SMA[50].Val,
		SMA200:         snap.SMA[200].Val,
		Source:         "api",
	}); err != nil {
		log.Printf("[WARN] record analysis %s: %v", ticker, err)
	}

	trendDetails := make(map[string]maTrendDTO, len(result.MATrends))
	for k, v := range result.MATrends {
		trendDetails[k] = maTrendDTO{Value: safe(v.Value), Status: v.Status}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":         ticker,
		"current_price":  safe(snap.Close),
		"sma_50":         opt(snap.SMA[50]),
		"sma_200":        opt(snap.SMA[200]),
		"rsi":            opt(snap.RSI),
		"recommendation": result.Recommendation,
		"score":          result.Score,
		"reasons":        result.Reasons,
		"trend_details":  trendDetails,
		"indicators": map[string]interface{}{
			"SMA_10":       opt(snap.SMA[10]),
			"SMA_20":       opt(snap.SMA[20]),
			"SMA_50":       opt(snap.SMA[50]),
			"SMA_100":      opt(snap.SMA[100]),
			"SMA_200":      opt(snap.SMA[200]),
			"RSI":          opt(snap.RSI),
			"Stochastic_K": opt(snap.K),
			"Stochastic_D": opt(snap.D),
		},
		"patterns": map[string]interface{}{
			"candle": patterns,
			"trend":  trend,
		},
	})
}

func (s *Server) handleFundamentals(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	fund, err := s.Fetcher.FetchFundamentals(ticker)
	if err != nil {
		if errors.Is(err, collector.ErrNotFound) {
			writeError(w, http.StatusNotFound, "stock data not found")
			return
		}
		s.Metrics.UpstreamErrors.Inc()
		log.Printf("[WARN] fundamentals %s: %v", ticker, err)
		fund = nil
	}
	if fund == nil {
		fund = &model.Fundamentals{}
	}

	financials, err := s.Fetcher.FetchQuarterlyIncome(ticker)
	if err != nil {
		s.Metrics.UpstreamErrors.Inc()
		log.Printf("[WARN] quarterly income %s: %v", ticker, err)
	}
	if financials == nil {
		financials = []model.QuarterlyIncome{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol": ticker,
		"ratios": map[string]interface{}{
			"PER":       nonZero(fund.PE()),
			"PBV":       nonZero(fund.PriceToBook),
			"MarketCap": nonZero(fund.MarketCap),
		},
		"financials": financials,
	})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	// 2y of history gives the trend fit enough context.
	bars, ok := s.fetchBars(w, ticker, "2y")
	if !ok {
		return
	}

	forecast := analysis.Forecast(analysis.NewFrame(bars), s.Cfg.Forecast.HorizonDays)
	if forecast == nil {
		forecast = []model.ForecastPoint{}
	}
	writeJSON(w, http.StatusOK, forecast)
}

func (s *Server) handleSeasonal(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	bars, ok := s.fetchBars(w, ticker, "5y")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, analysis.Seasonal(analysis.NewFrame(bars)))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")
	rng := r.URL.Query().Get("range")
	if !allowedRanges[rng] {
		rng = "1y"
	}

	bars, ok := s.fetchBars(w, ticker, rng)
	if !ok {
		return
	}

	type chartRow struct {
		Time   string  `json:"time"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
	}
	rows := make([]chartRow, len(bars))
	for i, b := range bars {
		rows[i] = chartRow{
			Time:   b.Time.Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ticker := q.Get("ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'ticker' is required")
		return
	}
	avgPrice, err := strconv.ParseFloat(q.Get("avg_price"), 64)
	if err != nil || avgPrice <= 0 {
		writeError(w, http.StatusBadRequest, "query parameter 'avg_price' must be a positive number")
		return
	}

	// Accepted for future cost-basis refinement, currently unused.
	var buyDate *time.Time
	if v := q.Get("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			buyDate = &t
		}
	}

	// 2y ensures enough data for SMA 200 and support/resistance.
	bars, ok := s.fetchBars(w, ticker, "2y")
	if !ok {
		return
	}

	plan := analysis.PlanTrade(analysis.NewFrame(bars), avgPrice, buyDate)
	if plan == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}

	if err := s.Recorder.RecordTradePlan(&recorder.TradePlanRecord{
		Symbol:       ticker,
		AvgPrice:     plan.AvgPrice,
		CurrentPrice: plan.CurrentPrice,
		PLPct:        plan.PLPct,
		Action:       plan.Action,
		Trend:        plan.MarketTrend,
		TP1:          plan.Targets.TP1,
		TP2:          plan.Targets.TP2,
		TP3:          plan.Targets.TP3,
		CL:           plan.Targets.CL,
	}); err != nil {
		log.Printf("[WARN] record trade plan %s: %v", ticker, err)
	}

	writeJSON(w, http.StatusOK, plan)
}
