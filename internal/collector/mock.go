package collector

import (
	"time"

	"StockScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	Bars         []model.OHLCV
	Profile      *model.CompanyProfile
	Fundamentals *model.Fundamentals
	Quarterly    []model.QuarterlyIncome
	Results      []model.SearchResult
	Err          error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol, rng, interval string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(m.Price, barsForRange(rng)), nil
}

func (m *MockFetcher) FetchProfile(symbol string) (*model.CompanyProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Profile != nil {
		return m.Profile, nil
	}
	return &model.CompanyProfile{Symbol: symbol, Name: symbol, Price: m.Price}, nil
}

func (m *MockFetcher) FetchFundamentals(symbol string) (*model.Fundamentals, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Fundamentals, nil
}

func (m *MockFetcher) FetchQuarterlyIncome(symbol string) ([]model.QuarterlyIncome, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quarterly, nil
}

func (m *MockFetcher) Search(query string) ([]model.SearchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

func barsForRange(rng string) int {
	switch rng {
	case "1mo":
		return 22
	case "3mo":
		return 63
	case "6mo":
		return 126
	case "1y":
		return 252
	case "2y":
		return 504
	case "5y":
		return 1260
	default:
		return 252
	}
}

// GenerateBars builds a gently trending synthetic daily series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
