package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"StockScope/internal/model"
)

const (
	chartBaseURL        = "https://query1.finance.yahoo.com/v8/finance/chart"
	quoteSummaryBaseURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	searchURL           = "https://query2.finance.yahoo.com/v1/finance/search"

	userAgent = "Mozilla/5.0"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client       *http.Client
	SearchClient *http.Client // shorter timeout, search degrades fast
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SearchClient: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) get(client *http.Client, u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchBars fetches daily bars for a range such as "1y" or "5y".
func (f *YahooFetcher) FetchBars(symbol, rng, interval string) ([]model.OHLCV, error) {
	if interval == "" {
		interval = "1d"
	}
	u := fmt.Sprintf("%s/%s?interval=%s&range=%s",
		chartBaseURL, url.PathEscape(symbol), interval, rng)

	body, err := f.get(f.Client, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrNotFound
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrNotFound
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) ||
			i >= len(quote.Low) || i >= len(quote.Close) || i >= len(quote.Volume) {
			break
		}
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	if len(bars) == 0 {
		return nil, ErrNotFound
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// yahooNum matches Yahoo's {"raw": ..., "fmt": ...} number wrapper.
type yahooNum struct {
	Raw float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				LongBusinessSummary string `json:"longBusinessSummary"`
				Website             string `json:"website"`
			} `json:"assetProfile"`
			Price *struct {
				LongName           string   `json:"longName"`
				ShortName          string   `json:"shortName"`
				RegularMarketPrice yahooNum `json:"regularMarketPrice"`
			} `json:"price"`
			SummaryDetail *struct {
				TrailingPE yahooNum `json:"trailingPE"`
				ForwardPE  yahooNum `json:"forwardPE"`
				MarketCap  yahooNum `json:"marketCap"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				PriceToBook yahooNum `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				RevenueGrowth   yahooNum `json:"revenueGrowth"`
				ProfitMargins   yahooNum `json:"profitMargins"`
				CurrentPrice    yahooNum `json:"currentPrice"`
				TargetMeanPrice yahooNum `json:"targetMeanPrice"`
			} `json:"financialData"`
			IncomeStatementHistoryQuarterly *struct {
				IncomeStatementHistory []struct {
					EndDate                yahooNum `json:"endDate"`
					TotalRevenue           yahooNum `json:"totalRevenue"`
					NetIncome              yahooNum `json:"netIncome"`
					TotalOperatingExpenses yahooNum `json:"totalOperatingExpenses"`
				} `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistoryQuarterly"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (f *YahooFetcher) quoteSummary(symbol, modules string) (*quoteSummaryResponse, error) {
	u := fmt.Sprintf("%s/%s?modules=%s", quoteSummaryBaseURL, url.PathEscape(symbol), modules)
	body, err := f.get(f.Client, u)
	if err != nil {
		return nil, err
	}
	var qs quoteSummaryResponse
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, ErrNotFound
	}
	return &qs, nil
}

// FetchProfile fetches company metadata and the latest market price.
func (f *YahooFetcher) FetchProfile(symbol string) (*model.CompanyProfile, error) {
	qs, err := f.quoteSummary(symbol, "assetProfile,price")
	if err != nil {
		return nil, err
	}
	r := qs.QuoteSummary.Result[0]

	p := &model.CompanyProfile{Symbol: symbol, Name: symbol}
	if r.Price != nil {
		if r.Price.LongName != "" {
			p.Name = r.Price.LongName
		} else if r.Price.ShortName != "" {
			p.Name = r.Price.ShortName
		}
		p.Price = r.Price.RegularMarketPrice.Raw
	}
	if r.AssetProfile != nil {
		p.Sector = r.AssetProfile.Sector
		p.Industry = r.AssetProfile.Industry
		p.Description = r.AssetProfile.LongBusinessSummary
		p.Website = r.AssetProfile.Website
	}
	return p, nil
}

// FetchFundamentals fetches the valuation fields used by the scorer.
func (f *YahooFetcher) FetchFundamentals(symbol string) (*model.Fundamentals, error) {
	qs, err := f.quoteSummary(symbol, "summaryDetail,defaultKeyStatistics,financialData")
	if err != nil {
		return nil, err
	}
	r := qs.QuoteSummary.Result[0]

	fund := &model.Fundamentals{}
	if r.SummaryDetail != nil {
		fund.TrailingPE = r.SummaryDetail.TrailingPE.Raw
		fund.ForwardPE = r.SummaryDetail.ForwardPE.Raw
		fund.MarketCap = r.SummaryDetail.MarketCap.Raw
	}
	if r.DefaultKeyStatistics != nil {
		fund.PriceToBook = r.DefaultKeyStatistics.PriceToBook.Raw
	}
	if r.FinancialData != nil {
		fund.RevenueGrowth = r.FinancialData.RevenueGrowth.Raw
		fund.ProfitMargin = r.FinancialData.ProfitMargins.Raw
		fund.CurrentPrice = r.FinancialData.CurrentPrice.Raw
		fund.TargetMeanPrice = r.FinancialData.TargetMeanPrice.Raw
	}
	return fund, nil
}

// FetchQuarterlyIncome fetches up to 12 quarterly income statement rows.
func (f *YahooFetcher) FetchQuarterlyIncome(symbol string) ([]model.QuarterlyIncome, error) {
	qs, err := f.quoteSummary(symbol, "incomeStatementHistoryQuarterly")
	if err != nil {
		return nil, err
	}
	r := qs.QuoteSummary.Result[0]
	if r.IncomeStatementHistoryQuarterly == nil {
		return nil, nil
	}

	rows := r.IncomeStatementHistoryQuarterly.IncomeStatementHistory
	out := make([]model.QuarterlyIncome, 0, len(rows))
	for _, row := range rows {
		if len(out) >= 12 {
			break
		}
		out = append(out, model.QuarterlyIncome{
			Date:             time.Unix(int64(row.EndDate.Raw), 0).UTC().Format("2006-01-02"),
			Revenue:          row.TotalRevenue.Raw,
			NetIncome:        row.NetIncome.Raw,
			OperatingExpense: row.TotalOperatingExpenses.Raw,
		})
	}
	return out, nil
}

// yahooSearch is the response structure from the Yahoo Finance search API.
type yahooSearch struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		LongName  string `json:"longname"`
		ShortName string `json:"shortname"`
		Exchange  string `json:"exchange"`
	} `json:"quotes"`
}

// Search queries the symbol search endpoint. The search client uses a short
// timeout so autocomplete degrades quickly.
func (f *YahooFetcher) Search(query string) ([]model.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", "20")
	q.Set("newsCount", "0")
	q.Set("enableFuzzyQuery", "false")
	q.Set("quotesQueryId", "tss_match_phrase_query")

	body, err := f.get(f.SearchClient, searchURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var res yahooSearch
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	results := make([]model.SearchResult, 0, len(res.Quotes))
	for _, item := range res.Quotes {
		if item.Symbol == "" {
			continue
		}
		name := item.LongName
		if name == "" {
			name = item.ShortName
		}
		if name == "" {
			name = "N/A"
		}
		results = append(results, model.SearchResult{
			Symbol:   item.Symbol,
			Name:     name,
			Exchange: normalizeExchange(item.Symbol, item.Exchange),
		})
	}
	return results, nil
}

// normalizeExchange folds upstream exchange codes into a small display set.
func normalizeExchange(symbol, exchange string) string {
	exch := strings.ToUpper(exchange)
	switch {
	case strings.HasSuffix(symbol, ".JK") || exch == "JKT":
		return "IDX"
	case strings.Contains(exch, "NASDAQ") || exch == "NMS" || exch == "NGM":
		return "NDX"
	case exch == "NYQ" || exch == "NYSE":
		return "NYSE"
	case exch != "":
		return exch
	default:
		return "EQ"
	}
}
