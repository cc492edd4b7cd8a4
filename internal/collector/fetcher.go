package collector

import (
	"errors"

	"StockScope/internal/model"
)

// ErrNotFound indicates the data source has no data for the requested ticker.
var ErrNotFound = errors.New("stock data not found")

// Fetcher defines the interface for the market data provider.
type Fetcher interface {
	// FetchBars returns daily bars for the given range ("1mo".."5y"), sorted
	// by date ascending. Returns ErrNotFound when the ticker is unknown.
	FetchBars(symbol, rng, interval string) ([]model.OHLCV, error)
	// FetchProfile returns company metadata.
	FetchProfile(symbol string) (*model.CompanyProfile, error)
	// FetchFundamentals returns valuation fields; absent fields are zero.
	FetchFundamentals(symbol string) (*model.Fundamentals, error)
	// FetchQuarterlyIncome returns quarterly income statement rows, newest first.
	FetchQuarterlyIncome(symbol string) ([]model.QuarterlyIncome, error)
	// Search returns symbol candidates for a free-text query.
	Search(query string) ([]model.SearchResult, error)
	Name() string
}
