// Package server exposes the analysis pipeline over a small HTTP API. Every
// request fetches a fresh series from the market data provider and runs the
// pipeline synchronously; no state is shared across requests.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/recorder"
	"StockScope/internal/tickers"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the request handlers and their collaborators.
type Server struct {
	Fetcher  collector.Fetcher
	Catalog  *tickers.Catalog
	Recorder recorder.Recorder
	Cfg      *config.Config
	Metrics  *Metrics

	srv *http.Server
}

// New creates a Server with its routes registered.
func New(cfg *config.Config, fetcher collector.Fetcher, cat *tickers.Catalog, rec recorder.Recorder, metrics *Metrics) *Server {
	s := &Server{
		Fetcher:  fetcher,
		Catalog:  cat,
		Recorder: rec,
		Cfg:      cfg,
		Metrics:  metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/search", s.wrap("search", s.handleSearch))
	mux.HandleFunc("GET /api/market-summary", s.wrap("market_summary", s.handleMarketSummary))
	mux.HandleFunc("GET /api/stocks", s.wrap("stocks", s.handleStockList))
	mux.HandleFunc("GET /api/stock/{ticker}", s.wrap("details", s.handleDetails))
	mux.HandleFunc("GET /api/stock/{ticker}/technicals", s.wrap("technicals", s.handleTechnicals))
	mux.HandleFunc("GET /api/stock/{ticker}/fundamentals", s.wrap("fundamentals", s.handleFundamentals))
	mux.HandleFunc("GET /api/stock/{ticker}/forecast", s.wrap("forecast", s.handleForecast))
	mux.HandleFunc("GET /api/stock/{ticker}/seasonal", s.wrap("seasonal", s.handleSeasonal))
	mux.HandleFunc("GET /api/stock/{ticker}/chart", s.wrap("chart", s.handleChart))
	mux.HandleFunc("GET /api/analyze-trade", s.wrap("analyze_trade", s.handleAnalyzeTrade))
	mux.HandleFunc("OPTIONS /api/", func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		w.WriteHeader(http.StatusOK)
	})

	s.srv = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}
	return s
}

// setCORS sets permissive CORS headers on API responses.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// wrap adds CORS headers, a request ID, access logging and metrics around a handler.
func (s *Server) wrap(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		h(rec, r)
		elapsed := time.Since(start)

		log.Printf("[INFO] %s %s -> %d (%s) req_id=%s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Millisecond), reqID)
		s.Metrics.RequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", rec.status)).Inc()
		s.Metrics.RequestDuration.Observe(elapsed.Seconds())
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
