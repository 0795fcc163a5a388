package strategy

import (
	"TrendSentry/internal/calculator"
	"TrendSentry/internal/model"
)

// Engine derives a directional signal from an SMA crossover confirmed by RSI.
type Engine struct {
	SMAWindow  int
	RSIPeriod  int
	Overbought float64
	Oversold   float64
}

// NewEngine creates an Engine with the given windows and thresholds.
func NewEngine(smaWindow, rsiPeriod int, overbought, oversold float64) *Engine {
	return &Engine{
		SMAWindow:  smaWindow,
		RSIPeriod:  rsiPeriod,
		Overbought: overbought,
		Oversold:   oversold,
	}
}

// warmup is the minimum bar count for both indicators to be valid on the two
// most recent bars.
func (e *Engine) warmup() int {
	n := e.SMAWindow
	if e.RSIPeriod > n {
		n = e.RSIPeriod
	}
	return n + 1
}

// Evaluate computes the crossover signal from an ordered bar sequence.
// Insufficient history yields SignalNone with a nil snapshot and no error;
// the caller must not proceed to sentiment or position evaluation when the
// snapshot is nil.
func (e *Engine) Evaluate(bars []model.OHLCV) (model.Signal, *model.IndicatorSnapshot, error) {
	if len(bars) < e.warmup() {
		return model.SignalNone, nil, nil
	}

	sma, err := calculator.SMASeries(bars, e.SMAWindow)
	if err != nil {
		return model.SignalNone, nil, err
	}
	rsi, err := calculator.RSISeries(bars, e.RSIPeriod)
	if err != nil {
		return model.SignalNone, nil, err
	}

	cur, prev := len(bars)-1, len(bars)-2
	snap := &model.IndicatorSnapshot{
		Close: bars[cur].Close,
		SMA:   sma[cur],
		RSI:   rsi[cur],
	}

	crossedUp := bars[prev].Close < sma[prev] && bars[cur].Close > sma[cur]
	crossedDown := bars[prev].Close > sma[prev] && bars[cur].Close < sma[cur]

	switch {
	case crossedUp && rsi[cur] < e.Overbought:
		return model.SignalBuy, snap, nil
	case crossedDown && rsi[cur] > e.Oversold:
		return model.SignalSell, snap, nil
	default:
		return model.SignalNone, snap, nil
	}
}
