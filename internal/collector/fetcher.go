package collector

import "TrendSentry/internal/model"

// Fetcher defines the interface for fetching market data. An empty bar
// sequence means "no data available" and is not an error.
type Fetcher interface {
	FetchIntradayBars(symbol, interval string, lookbackDays int) ([]model.OHLCV, error)
	Name() string
}
