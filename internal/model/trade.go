package model

import "time"

// CompletedTrade is an append-only record of one entry+exit round trip.
type CompletedTrade struct {
	EntryTime     time.Time
	ExitTime      time.Time
	Symbol        string
	Side          Side
	EntryPrice    float64
	ExitPrice     float64
	ProfitLoss    float64
	ProfitLossPct float64
}

// NewCompletedTrade builds the round-trip record, deriving P/L from the
// entry and exit prices.
func NewCompletedTrade(symbol string, entryTime, exitTime time.Time, entryPrice, exitPrice float64) *CompletedTrade {
	pnl := exitPrice - entryPrice
	pct := 0.0
	if entryPrice != 0 {
		pct = pnl / entryPrice * 100
	}
	return &CompletedTrade{
		EntryTime:     entryTime,
		ExitTime:      exitTime,
		Symbol:        symbol,
		Side:          SideLong,
		EntryPrice:    entryPrice,
		ExitPrice:     exitPrice,
		ProfitLoss:    pnl,
		ProfitLossPct: pct,
	}
}
