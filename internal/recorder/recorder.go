package recorder

import (
	"time"

	"TrendSentry/internal/model"
)

// CycleRecord captures one admitted evaluation cycle.
type CycleRecord struct {
	Time      time.Time
	Price     float64
	SMA       float64
	RSI       float64
	Signal    model.Signal
	Sentiment model.Sentiment
	Action    string
}

// Recorder persists evaluation history for later analysis.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	RecordTrade(trade *model.CompletedTrade) error
	Close() error
}
