package tickerindex

// SeedCatalog returns the built-in ticker catalog used when Redis is empty
// or not configured. Large-cap US listings plus a few heavily traded ADRs.
func SeedCatalog() []Entry {
	return []Entry{
		{Ticker: "AAPL", Name: "Apple Inc."},
		{Ticker: "ABBV", Name: "AbbVie Inc."},
		{Ticker: "ABT", Name: "Abbott Laboratories"},
		{Ticker: "ADBE", Name: "Adobe Inc."},
		{Ticker: "AMD", Name: "Advanced Micro Devices Inc."},
		{Ticker: "AMZN", Name: "Amazon.com Inc."},
		{Ticker: "AVGO", Name: "Broadcom Inc."},
		{Ticker: "AXP", Name: "American Express Company"},
		{Ticker: "AZN", Name: "AstraZeneca PLC"},
		{Ticker: "BA", Name: "Boeing Company"},
		{Ticker: "BAC", Name: "Bank of America Corporation"},
		{Ticker: "BLK", Name: "BlackRock Inc."},
		{Ticker: "BMY", Name: "Bristol-Myers Squibb Company"},
		{Ticker: "BRK.B", Name: "Berkshire Hathaway Inc. Class B"},
		{Ticker: "C", Name: "Citigroup Inc."},
		{Ticker: "CAT", Name: "Caterpillar Inc."},
		{Ticker: "COST", Name: "Costco Wholesale Corporation"},
		{Ticker: "CRM", Name: "Salesforce Inc."},
		{Ticker: "CSCO", Name: "Cisco Systems Inc."},
		{Ticker: "CVX", Name: "Chevron Corporation"},
		{Ticker: "DIS", Name: "Walt Disney Company"},
		{Ticker: "GE", Name: "General Electric Company"},
		{Ticker: "GILD", Name: "Gilead Sciences Inc."},
		{Ticker: "GOOGL", Name: "Alphabet Inc. (Google) Class A"},
		{Ticker: "GS", Name: "Goldman Sachs Group Inc."},
		{Ticker: "HD", Name: "Home Depot Inc."},
		{Ticker: "HON", Name: "Honeywell International Inc."},
		{Ticker: "IBM", Name: "International Business Machines Corporation"},
		{Ticker: "INTC", Name: "Intel Corporation"},
		{Ticker: "JNJ", Name: "Johnson & Johnson"},
		{Ticker: "JPM", Name: "JPMorgan Chase & Co."},
		{Ticker: "KO", Name: "Coca-Cola Company"},
		{Ticker: "LLY", Name: "Eli Lilly and Company"},
		{Ticker: "LMT", Name: "Lockheed Martin Corporation"},
		{Ticker: "MA", Name: "Mastercard Incorporated"},
		{Ticker: "MCD", Name: "McDonald's Corporation"},
		{Ticker: "MDT", Name: "Medtronic PLC"},
		{Ticker: "META", Name: "Meta Platforms Inc. (Facebook)"},
		{Ticker: "MMM", Name: "3M Company"},
		{Ticker: "MRK", Name: "Merck & Co. Inc."},
		{Ticker: "MS", Name: "Morgan Stanley"},
		{Ticker: "MSFT", Name: "Microsoft Corporation"},
		{Ticker: "NEE", Name: "NextEra Energy Inc."},
		{Ticker: "NFLX", Name: "Netflix Inc."},
		{Ticker: "NKE", Name: "Nike Inc."},
		{Ticker: "NVDA", Name: "NVIDIA Corporation"},
		{Ticker: "NVO", Name: "Novo Nordisk A/S"},
		{Ticker: "ORCL", Name: "Oracle Corporation"},
		{Ticker: "PEP", Name: "PepsiCo Inc."},
		{Ticker: "PFE", Name: "Pfizer Inc."},
		{Ticker: "PG", Name: "Procter & Gamble Company"},
		{Ticker: "PM", Name: "Philip Morris International Inc."},
		{Ticker: "PYPL", Name: "PayPal Holdings Inc."},
		{Ticker: "QCOM", Name: "Qualcomm Incorporated"},
		{Ticker: "RTX", Name: "RTX Corporation (Raytheon)"},
		{Ticker: "SBUX", Name: "Starbucks Corporation"},
		{Ticker: "SHEL", Name: "Shell PLC"},
		{Ticker: "T", Name: "AT&T Inc."},
		{Ticker: "TMO", Name: "Thermo Fisher Scientific Inc."},
		{Ticker: "TSLA", Name: "Tesla Inc."},
		{Ticker: "TSM", Name: "Taiwan Semiconductor Manufacturing Company"},
		{Ticker: "TXN", Name: "Texas Instruments Incorporated"},
		{Ticker: "UNH", Name: "UnitedHealth Group Incorporated"},
		{Ticker: "UPS", Name: "United Parcel Service Inc."},
		{Ticker: "V", Name: "Visa Inc."},
		{Ticker: "VZ", Name: "Verizon Communications Inc."},
		{Ticker: "WFC", Name: "Wells Fargo & Company"},
		{Ticker: "WMT", Name: "Walmart Inc."},
		{Ticker: "XOM", Name: "Exxon Mobil Corporation"},
	}
}
