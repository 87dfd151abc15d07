package tools

// The tools in this file answer locally. They describe fixed facts about US
// market structure or do pure time arithmetic, so no upstream call is made
// and no credential is needed.

func getMarketHoursInfo() *Descriptor {
	return &Descriptor{
		Name:        "get_market_hours_info",
		Description: "Get information about U.S. market trading hours and timezone handling.",
		Local: func(_ Args) (any, error) {
			return marketHoursDocument(), nil
		},
	}
}

func convertUTCToET() *Descriptor {
	return &Descriptor{
		Name:        "convert_utc_to_et",
		Description: "Convert a UTC timestamp to Eastern Time for market hour analysis.",
		Params: []Param{
			{
				Name:        "utc_timestamp",
				Type:        TypeString,
				Description: "Unix timestamp (seconds or milliseconds) or ISO-8601 instant, UTC",
				Required:    true,
			},
		},
		Local: func(args Args) (any, error) {
			t, err := parseInstant(args["utc_timestamp"])
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"utc_timestamp":  args["utc_timestamp"],
				"utc_datetime":   t.UTC().Format("2006-01-02 15:04:05") + " UTC",
				"et_datetime":    FormatEastern(t),
				"market_session": string(SessionAt(t)),
			}, nil
		},
	}
}

func getExchangeInfo() *Descriptor {
	return &Descriptor{
		Name:        "get_exchange_info",
		Description: "Get information about major U.S. stock exchanges covered by the data feed.",
		Local: func(_ Args) (any, error) {
			return exchangeDocument(), nil
		},
	}
}

func getSIPInfo() *Descriptor {
	return &Descriptor{
		Name:        "get_sip_info",
		Description: "Get information about Securities Information Processors (SIPs) and their role in market data.",
		Local: func(_ Args) (any, error) {
			return sipDocument(), nil
		},
	}
}

func getMarketDataCoverage() *Descriptor {
	return &Descriptor{
		Name:        "get_market_data_coverage",
		Description: "Get comprehensive information about market data coverage and infrastructure.",
		Local: func(_ Args) (any, error) {
			return coverageDocument(), nil
		},
	}
}

func marketHoursDocument() map[string]any {
	return map[string]any{
		"pre_market": map[string]any{
			"start":    "04:00",
			"end":      "09:30",
			"timezone": "ET",
		},
		"regular_market": map[string]any{
			"start":    "09:30",
			"end":      "16:00",
			"timezone": "ET",
		},
		"after_hours": map[string]any{
			"start":    "16:00",
			"end":      "20:00",
			"timezone": "ET",
		},
		"important_notes": []string{
			"All Polygon timestamps are in UTC (Unix timestamps)",
			"Convert UTC to ET for market hour alignment",
			"Pre-market: 4:00 AM - 9:30 AM ET",
			"Regular market: 9:30 AM - 4:00 PM ET",
			"After-hours: 4:00 PM - 8:00 PM ET",
		},
	}
}

func exchangeDocument() map[string]any {
	return map[string]any{
		"major_exchanges": []map[string]any{
			{
				"name":    "New York Stock Exchange",
				"symbols": []string{"NYSE", "NYSE American", "NYSE Arca", "NYSE Chicago", "NYSE National"},
			},
			{
				"name":    "Nasdaq",
				"symbols": []string{"OMX", "BX", "PSX", "Philadelphia"},
			},
			{
				"name":    "Cboe Global Markets",
				"symbols": []string{"BZX", "BYX", "EDGX", "EDGA"},
			},
			{
				"name":    "MIAX Exchange Group",
				"symbols": []string{"Pearl", "Emerald", "Equities"},
			},
			{
				"name":    "Members Exchange",
				"symbols": []string{"MEMX"},
			},
			{
				"name":    "Investors Exchange",
				"symbols": []string{"IEX"},
			},
			{
				"name":    "Long-Term Stock Exchange",
				"symbols": []string{"LTSE"},
			},
		},
		"additional_sources": []map[string]any{
			{
				"name":        "FINRA Trading Facilities",
				"description": "Provides trade reporting but not quotes",
				"facilities":  []string{"FINRA NYSE TRF", "FINRA Nasdaq TRF Carteret", "FINRA Nasdaq TRF Chicago"},
			},
			{
				"name":        "OTC Reporting Facility",
				"description": "Captures OTC trades but not quotes",
			},
		},
		"total_coverage": "19 major stock exchanges + dark pools + FINRA + OTC",
		"data_quality":   "Direct exchange feeds + SIP consolidation for accuracy",
	}
}

func sipDocument() map[string]any {
	return map[string]any{
		"what_are_sips": "Securities Information Processors (SIPs) consolidate trade and quote data from all exchanges into a single feed",
		"sip_functions": []string{
			"Provide National Best Bid and Offer (NBBO)",
			"Consolidate last sale data",
			"Ensure equal access to market data",
			"Maintain transparent and fair trading environment",
		},
		"major_sips": []map[string]any{
			{
				"name":     "Consolidated Tape Association (CTA)",
				"coverage": "NYSE-listed and regional exchange securities",
				"tapes":    []string{"Tape A", "Tape B"},
			},
			{
				"name":     "Unlisted Trading Privileges (UTP)",
				"coverage": "All Nasdaq-listed securities",
				"tapes":    []string{"Tape C"},
			},
		},
		"data_flow": []string{
			"Exchanges → SIPs → Polygon.io → Users",
			"Direct exchange feeds + SIP consolidation",
			"Alternative Trading Systems (ATS) report to FINRA within 10 seconds",
		},
		"importance": "SIPs are vital infrastructure ensuring all market participants have equal access to trade and quote data",
	}
}

func coverageDocument() map[string]any {
	return map[string]any{
		"infrastructure": map[string]any{
			"primary_facility": "Equinix Data Center, New Jersey",
			"redundancy":       "ORD11 data center, Chicago",
			"co_location":      "Strategically co-located with exchanges",
			"benefits":         []string{"Reduced latency", "Enhanced reliability", "Direct physical connections"},
		},
		"data_sources": map[string]any{
			"exchanges":  "All 19 major U.S. stock exchanges",
			"dark_pools": "Additional dark pool data",
			"finra":      "FINRA trading facilities",
			"otc":        "OTC markets",
			"ats":        "Alternative Trading Systems",
		},
		"data_quality": map[string]any{
			"direct_feeds":    "Direct relationships with each exchange",
			"licensing":       "Compliance with all licensing requirements",
			"sip_integration": "Combines direct exchange access with regulated SIP consolidation",
			"coverage":        "Every trade, quote, and market event as it occurs",
		},
		"regulatory_compliance": map[string]any{
			"personal_use":     "Full U.S. feed available for non-industry professionals",
			"business_clients": "Tailored plans with specific exchange licensing",
			"monitoring":       "Close compliance monitoring for appropriate usage",
		},
		"market_hours": map[string]any{
			"pre_market":       "4:00 AM - 9:30 AM ET",
			"regular_market":   "9:30 AM - 4:00 PM ET",
			"after_hours":      "4:00 PM - 8:00 PM ET",
			"timestamp_format": "Unix timestamps (UTC)",
		},
	}
}
