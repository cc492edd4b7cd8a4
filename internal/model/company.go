package model

// CompanyProfile holds descriptive metadata for a listed company.
type CompanyProfile struct {
	Symbol      string
	Name        string
	Price       float64
	Sector      string
	Industry    string
	Description string
	Website     string
}

// Fundamentals holds valuation fields used by the recommendation scorer and
// the fundamentals endpoint. A zero value means the field was not reported.
type Fundamentals struct {
	TrailingPE      float64
	ForwardPE       float64
	PriceToBook     float64
	MarketCap       float64
	RevenueGrowth   float64 // fraction, 0.20 == 20%
	ProfitMargin    float64 // fraction
	CurrentPrice    float64
	TargetMeanPrice float64
}

// PE returns the trailing P/E ratio, falling back to the forward ratio.
func (f Fundamentals) PE() float64 {
	if f.TrailingPE != 0 {
		return f.TrailingPE
	}
	return f.ForwardPE
}

// QuarterlyIncome is one row of a company's quarterly income statement.
type QuarterlyIncome struct {
	Date             string  `json:"date"` // period end, YYYY-MM-DD
	Revenue          float64 `json:"revenue"`
	NetIncome        float64 `json:"net_income"`
	OperatingExpense float64 `json:"operating_expense"`
}

// SearchResult is one candidate from the symbol search provider.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// Quote is a lightweight latest-price summary used by the market summary.
type Quote struct {
	Symbol  string  `json:"symbol"`
	Price   float64 `json:"price"`
	Change  float64 `json:"change"`
	PChange float64 `json:"pchange"`
}
