package tools

import (
	"fmt"
	"time"
)

var timespanValues = []string{"second", "minute", "hour", "day", "week", "month", "quarter", "year"}

func getAggregates() *Descriptor {
	return &Descriptor{
		Name:        "get_aggregates",
		Description: "Get aggregate bars for a ticker over a given date range in custom time window sizes.",
		Path:        "/v2/aggs/ticker/{ticker}/range/{multiplier}/{timespan}/{from_date}/{to_date}",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
			{Name: "multiplier", Type: TypeInteger, Description: "Size of the timespan multiplier", Required: true, In: InPath},
			{Name: "timespan", Type: TypeEnum, Description: "Size of the time window", Required: true, In: InPath, Enum: timespanValues},
			{Name: "from_date", Type: TypeDate, Description: "Start date for the aggregate window", Required: true, In: InPath},
			{Name: "to_date", Type: TypeDate, Description: "End date for the aggregate window", Required: true, In: InPath},
			{Name: "adjusted", Type: TypeBoolean, Description: "Whether the results are adjusted for splits", In: InQuery},
			{Name: "sort", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of base aggregates queried", In: InQuery},
		},
	}
}

func getPreviousClose() *Descriptor {
	return &Descriptor{
		Name:        "get_previous_close",
		Description: "Get the previous day's open, close, high, and low for a specific ticker.",
		Path:        "/v2/aggs/ticker/{ticker}/prev",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
			{Name: "adjusted", Type: TypeBoolean, Description: "Whether the results are adjusted for splits", In: InQuery},
		},
	}
}

func getLastTrade() *Descriptor {
	return &Descriptor{
		Name:        "get_last_trade",
		Description: "Get the most recent trade for a ticker symbol.",
		Path:        "/v2/last/trade/{ticker}",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
		},
	}
}

func getLastQuote() *Descriptor {
	return &Descriptor{
		Name:        "get_last_quote",
		Description: "Get the most recent quote for a ticker symbol.",
		Path:        "/v2/last/quote/{ticker}",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
		},
	}
}

// getSnapshotTicker routes market_type into both the locale and markets path
// segments, the way upstream addresses per-market snapshots.
func getSnapshotTicker() *Descriptor {
	return &Descriptor{
		Name:        "get_snapshot_ticker",
		Description: "Get the current snapshot for a specific ticker.",
		Path:        "/v2/snapshot/locale/{market_type}/markets/{market_type}/tickers/{ticker}",
		Params: []Param{
			{Name: "market_type", Type: TypeEnum, Description: "Market type", Required: true, In: InPath, Enum: []string{"stocks", "forex", "crypto"}},
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
		},
	}
}

func getMarketStatus() *Descriptor {
	return &Descriptor{
		Name:        "get_market_status",
		Description: "Get the current trading status of exchanges and financial markets.",
		Path:        "/v1/marketstatus/now",
	}
}

// getIntradayAggregates is the aggregates query with trading-session
// awareness: every returned bar is annotated with its Eastern wall-clock
// time and the session it falls in.
func getIntradayAggregates() *Descriptor {
	return &Descriptor{
		Name:        "get_intraday_aggregates",
		Description: "Get intraday aggregate bars annotated with the market session each bar falls in.",
		Path:        "/v2/aggs/ticker/{ticker}/range/{multiplier}/{timespan}/{from_date}/{to_date}",
		Params: []Param{
			{Name: "ticker", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
			{Name: "multiplier", Type: TypeInteger, Description: "Size of the timespan multiplier", Required: true, In: InPath},
			{Name: "timespan", Type: TypeEnum, Description: "Size of the time window", Required: true, In: InPath, Enum: timespanValues},
			{Name: "from_date", Type: TypeDate, Description: "Start date for the aggregate window", Required: true, In: InPath},
			{Name: "to_date", Type: TypeDate, Description: "End date for the aggregate window", Required: true, In: InPath},
			{Name: "adjusted", Type: TypeBoolean, Description: "Whether the results are adjusted for splits", In: InQuery},
			{Name: "sort", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of base aggregates queried", In: InQuery},
			{Name: "include_otc", Type: TypeBoolean, Description: "Include OTC market data", In: InQuery},
		},
		Transform: augmentSessions,
	}
}

func getMarketGainersLosers() *Descriptor {
	return &Descriptor{
		Name:        "get_market_gainers_losers",
		Description: "Get the top gainers or losers in the market.",
		Path:        "/v2/snapshot/locale/us/markets/stocks/{direction}",
		Params: []Param{
			{Name: "direction", Type: TypeEnum, Description: "Direction", Required: true, In: InPath, Enum: []string{"gainers", "losers"}},
			{Name: "include_otc", Type: TypeBoolean, Description: "Include OTC stocks", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
		},
	}
}

func getMarketHolidays() *Descriptor {
	return &Descriptor{
		Name:        "get_market_holidays",
		Description: "Get upcoming market holidays and their open/close times.",
		Path:        "/v1/marketstatus/upcoming",
	}
}

// augmentSessions attaches market_session and et_time to every bar carrying
// a millisecond timestamp. Bars without one pass through untouched.
func augmentSessions(payload any, _ Args) (any, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregates payload type %T", payload)
	}
	bars, _ := doc["results"].([]any)
	for _, raw := range bars {
		bar, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		tsRaw, ok := bar["t"]
		if !ok {
			continue
		}
		ts, err := asInt64(tsRaw)
		if err != nil {
			continue
		}
		instant := time.UnixMilli(ts)
		bar["market_session"] = string(SessionAt(instant))
		bar["et_time"] = FormatEastern(instant)
	}
	return doc, nil
}
