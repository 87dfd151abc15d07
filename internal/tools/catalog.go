package tools

import "polygonmcp/internal/instrumentation"

// Catalog returns every tool descriptor in its advertised order.
func Catalog() []*Descriptor {
	return []*Descriptor{
		stockPrice(),
		stockInfo(),
		incomeStatement(),
		getAggregates(),
		getPreviousClose(),
		getLastTrade(),
		getLastQuote(),
		getSnapshotTicker(),
		getMarketStatus(),
		searchTickers(),
		getTickerNews(),
		getDividends(),
		getSplits(),
		getTreasuryYields(),
		getMarketHoursInfo(),
		convertUTCToET(),
		getExchangeInfo(),
		getIntradayAggregates(),
		getSIPInfo(),
		getMarketDataCoverage(),
		getTickerExchangeInfo(),
		getEarnings(),
		getAnalystRatings(),
		getShortInterest(),
		getOptionsContracts(),
		getOptionsSnapshot(),
		getBalanceSheet(),
		getCashFlow(),
		getMarketGainersLosers(),
		getMarketHolidays(),
		getInflationData(),
	}
}

// NewDefaultRegistry builds the registry with the full catalog registered.
func NewDefaultRegistry(client Getter, metrics *instrumentation.Metrics) (*Registry, error) {
	registry := NewRegistry(client, metrics)
	for _, d := range Catalog() {
		if err := registry.Register(d); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
