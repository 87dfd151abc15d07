package tools

import "fmt"

func searchTickers() *Descriptor {
	return &Descriptor{
		Name:        "search_tickers",
		Description: "Query supported ticker symbols across stocks, indices, forex, and crypto.",
		Path:        "/v3/reference/tickers",
		Params: []Param{
			{Name: "search", Type: TypeString, Description: "Search for tickers by name or ticker symbol", In: InQuery},
			{Name: "type", Type: TypeString, Description: "Type of ticker (CS, ADRC, ADRP, ADR, NY, NAS, OTC, PINK, Q, D, etc.)", In: InQuery},
			{Name: "market", Type: TypeEnum, Description: "Market filter", Enum: []string{"stocks", "crypto", "fx"}, In: InQuery},
			{Name: "active", Type: TypeBoolean, Description: "Filter for active or inactive tickers", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (ticker, name, market, locale, primary_exchange, type, active, currency_name, cik, composite_figi, share_class_figi)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getTickerNews() *Descriptor {
	return &Descriptor{
		Name:        "get_ticker_news",
		Description: "Get recent news articles for a stock ticker.",
		Path:        "/v2/reference/news",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "published_utc", Type: TypeString, Description: "Published date in UTC format", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (published_utc, article_url, title, author, ticker, image_url, description, keywords)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getDividends() *Descriptor {
	return &Descriptor{
		Name:        "get_dividends",
		Description: "Get historical cash dividends.",
		Path:        "/v3/reference/dividends",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "ex_dividend_date", Type: TypeDate, Description: "Ex-dividend date", In: InQuery},
			{Name: "frequency", Type: TypeInteger, Description: "Frequency of dividends (1 = annually, 2 = quarterly, 12 = monthly)", In: InQuery},
			{Name: "dividend_type", Type: TypeEnum, Description: "Type of dividend", Enum: []string{"CD", "SC", "LT", "ST"}, In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
		},
	}
}

func getSplits() *Descriptor {
	return &Descriptor{
		Name:        "get_splits",
		Description: "Get historical stock splits.",
		Path:        "/v3/reference/splits",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "execution_date", Type: TypeDate, Description: "Execution date of the split", In: InQuery},
			{Name: "reverse_split", Type: TypeBoolean, Description: "Filter for reverse splits", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
		},
	}
}

// getTickerExchangeInfo layers static coverage facts over the upstream
// ticker record; see transformExchangeCoverage.
func getTickerExchangeInfo() *Descriptor {
	return &Descriptor{
		Name:        "get_ticker_exchange_info",
		Description: "Get detailed exchange and listing information for a specific ticker.",
		Path:        "/v3/reference/tickers/{ticker}",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
		},
		Transform: transformExchangeCoverage,
	}
}

func getEarnings() *Descriptor {
	return &Descriptor{
		Name:        "get_earnings",
		Description: "Get earnings data for stocks.",
		Path:        "/v3/reference/earnings",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "date", Type: TypeDate, Description: "Earnings date", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (date, ticker, etc.)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getAnalystRatings() *Descriptor {
	return &Descriptor{
		Name:        "get_analyst_ratings",
		Description: "Get analyst ratings and price targets for stocks.",
		Path:        "/v2/reference/analysts",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "date", Type: TypeDate, Description: "Rating date", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (date, ticker, etc.)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getShortInterest() *Descriptor {
	return &Descriptor{
		Name:        "get_short_interest",
		Description: "Get short interest data for stocks.",
		Path:        "/v2/reference/short-interest",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", In: InQuery, Uppercase: true},
			{Name: "settlement_date", Type: TypeDate, Description: "Settlement date for short interest", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (settlement_date, ticker, etc.)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getBalanceSheet() *Descriptor {
	return &Descriptor{
		Name:        "get_balance_sheet",
		Description: "Get balance sheet data for a stock.",
		Path:        "/vX/reference/financials",
		Params:      financialsParams(),
	}
}

func getCashFlow() *Descriptor {
	return &Descriptor{
		Name:        "get_cash_flow",
		Description: "Get cash flow statement data for a stock.",
		Path:        "/vX/reference/financials",
		Params:      financialsParams(),
	}
}

// financialsParams is the shared contract for the statement endpoints:
// timeframe and order are always sent, falling back to the latest-quarter
// view when the caller does not say otherwise.
func financialsParams() []Param {
	return []Param{
		{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InQuery, Uppercase: true},
		{Name: "timeframe", Type: TypeEnum, Description: "Reporting timeframe", Enum: []string{"quarterly", "annual"}, Default: "quarterly", In: InQuery},
		{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
		{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, Default: "desc", In: InQuery},
	}
}

// transformExchangeCoverage projects the upstream ticker record onto its
// listing fields and attaches the coverage facts that hold for every symbol
// on the feed. A ticker with no record yields an error-shaped document, not
// a failed call.
func transformExchangeCoverage(payload any, args Args) (any, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
	info, _ := doc["results"].(map[string]any)
	if len(info) == 0 {
		return map[string]any{
			"error": fmt.Sprintf("No data found for ticker %s", args["ticker"]),
		}, nil
	}
	return map[string]any{
		"ticker":           args["ticker"],
		"primary_exchange": info["primary_exchange"],
		"market":           info["market"],
		"locale":           info["locale"],
		"type":             info["type"],
		"active":           info["active"],
		"currency_name":    info["currency_name"],
		"cik":              info["cik"],
		"composite_figi":   info["composite_figi"],
		"share_class_figi": info["share_class_figi"],
		"polygon_coverage": map[string]any{
			"data_available":  "Real-time trades, quotes, and market events",
			"exchange_feed":   "Direct feed from primary exchange",
			"sip_integration": "Included in consolidated SIP feeds",
			"market_sessions": []string{"pre_market", "regular_market", "after_hours"},
		},
	}, nil
}
