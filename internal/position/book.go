package position

import (
	"fmt"
	"sync"
	"time"

	"TrendSentry/internal/model"
)

// TradeWriter receives completed round trips for durable recording.
type TradeWriter interface {
	Append(trade *model.CompletedTrade) error
}

// Action describes what a cycle did to the position.
type Action string

const (
	ActionNone  Action = "NONE"
	ActionEntry Action = "ENTRY"
	ActionExit  Action = "EXIT"
)

// Transition is the outcome of applying one cycle to the position.
type Transition struct {
	Action    Action
	Price     float64
	Sentiment model.Sentiment
	Trade     *model.CompletedTrade
}

// Book holds the single persisted position and applies entry/exit rules.
// The whole read-evaluate-persist sequence runs under one mutex, so the
// position is a single-writer resource even if callers misbehave.
type Book struct {
	mu       sync.Mutex
	state    *model.PositionState
	filePath string
	symbol   string
	ledger   TradeWriter
}

// NewBook loads or initializes the position state from disk.
func NewBook(filePath, symbol string, ledger TradeWriter) (*Book, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Book{state: state, filePath: filePath, symbol: symbol, ledger: ledger}, nil
}

// Snapshot returns a copy of the current position state.
func (b *Book) Snapshot() model.PositionState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.state
}

// Apply evaluates the entry/exit rules for one cycle. Sentiment acts strictly
// as a veto: NEGATIVE suppresses a BUY, POSITIVE suppresses a SELL, NEUTRAL
// suppresses nothing. The state mutates at most once per call and is
// persisted before returning; completed trades are handed to the ledger
// before the position is cleared.
func (b *Book) Apply(signal model.Signal, sent model.Sentiment, price float64, now time.Time) (*Transition, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case signal == model.SignalBuy && !b.state.IsOpen() && sent != model.SentimentNegative && price > 0:
		side := model.SideLong
		b.state.OpenPosition = &side
		b.state.EntryPrice = price
		b.state.EntryTime = now
		if err := SaveState(b.filePath, b.state); err != nil {
			b.state = &model.PositionState{} // keep memory consistent with disk
			return nil, fmt.Errorf("persist entry: %w", err)
		}
		return &Transition{Action: ActionEntry, Price: price, Sentiment: sent}, nil

	case signal == model.SignalSell && b.state.IsOpen() && sent != model.SentimentPositive:
		trade := model.NewCompletedTrade(b.symbol, b.state.EntryTime, now, b.state.EntryPrice, price)
		// Ledger first: if the append fails the position stays open and the
		// exit is retried on the next SELL signal.
		if err := b.ledger.Append(trade); err != nil {
			return nil, fmt.Errorf("append trade: %w", err)
		}
		b.state = &model.PositionState{}
		if err := SaveState(b.filePath, b.state); err != nil {
			return nil, fmt.Errorf("persist exit: %w", err)
		}
		return &Transition{Action: ActionExit, Price: price, Sentiment: sent, Trade: trade}, nil

	default:
		return &Transition{Action: ActionNone, Price: price, Sentiment: sent}, nil
	}
}
