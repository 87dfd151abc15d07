package tools

import (
	"fmt"
	"net/url"
	"time"

	"polygonmcp/internal/polygon"
)

// stockPrice returns the last month of daily closes for a ticker. The date
// window is computed at call time: thirty days back from now, UTC.
func stockPrice() *Descriptor {
	return &Descriptor{
		Name:        "stock_price",
		Description: "Get the last known price and a month of daily closing prices for a given stock ticker.",
		Params: []Param{
			{
				Name:        "stock_ticker",
				Type:        TypeString,
				Description: "An alphanumeric stock ticker, e.g. NVDA",
				Required:    true,
				In:          InPath,
				Uppercase:   true,
			},
		},
		Build: func(args Args) (*polygon.Request, error) {
			end := time.Now().UTC()
			start := end.AddDate(0, 0, -30)
			path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/day/%s/%s",
				url.PathEscape(args["stock_ticker"]),
				start.Format(dateLayout),
				end.Format(dateLayout),
			)
			query := url.Values{}
			query.Set("adjusted", "true")
			query.Set("sort", "asc")
			query.Set("limit", "5000")
			return &polygon.Request{Path: path, Query: query}, nil
		},
		Transform: transformDailyCloses,
	}
}

func stockInfo() *Descriptor {
	return &Descriptor{
		Name:        "stock_info",
		Description: "Get background information about a company given its stock ticker.",
		Path:        "/v3/reference/tickers/{stock_ticker}",
		Params: []Param{
			{
				Name:        "stock_ticker",
				Type:        TypeString,
				Description: "An alphanumeric stock ticker, e.g. IBM",
				Required:    true,
				In:          InPath,
				Uppercase:   true,
			},
		},
		Transform: unwrapResults,
	}
}

// incomeStatement fetches the single most recent quarterly financials filing.
func incomeStatement() *Descriptor {
	return &Descriptor{
		Name:        "income_statement",
		Description: "Get the latest quarterly income statement for a given stock ticker.",
		Path:        "/vX/reference/financials",
		Params: []Param{
			{
				Name:        "stock_ticker",
				Key:         "ticker",
				Type:        TypeString,
				Description: "An alphanumeric stock ticker, e.g. BAC",
				Required:    true,
				In:          InQuery,
				Uppercase:   true,
			},
		},
		FixedQuery: url.Values{
			"timeframe": {"quarterly"},
			"limit":     {"1"},
			"order":     {"desc"},
		},
		Transform: firstResult,
	}
}

// transformDailyCloses reduces an aggregates payload to {ticker, closes}
// where each close is {date, close} with the bar timestamp rendered as a UTC
// calendar date.
func transformDailyCloses(payload any, args Args) (any, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregates payload type %T", payload)
	}
	bars, _ := doc["results"].([]any)
	closes := make([]map[string]any, 0, len(bars))
	for _, raw := range bars {
		bar, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ts, err := asInt64(bar["t"])
		if err != nil {
			continue
		}
		closes = append(closes, map[string]any{
			"date":  time.UnixMilli(ts).UTC().Format(dateLayout),
			"close": bar["c"],
		})
	}
	return map[string]any{
		"ticker": args["stock_ticker"],
		"closes": closes,
	}, nil
}

// unwrapResults lifts the "results" object out of a single-entity payload.
// A payload with no results becomes an empty object, not an error.
func unwrapResults(payload any, _ Args) (any, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
	if results, ok := doc["results"]; ok && results != nil {
		return results, nil
	}
	return map[string]any{}, nil
}

// firstResult lifts the first entry of a "results" list, or an empty object
// when the list is missing or empty.
func firstResult(payload any, _ Args) (any, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
	results, _ := doc["results"].([]any)
	if len(results) == 0 {
		return map[string]any{}, nil
	}
	return results[0], nil
}
