package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"

	"TrendSentry/internal/model"
)

// RSISeries computes the Wilder-smoothed RSI series over closing prices.
// Requires at least period+1 bars; entries before the warm-up index are zero.
func RSISeries(bars []model.OHLCV, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return nil, errors.New("not enough data for RSI calculation")
	}
	return talib.Rsi(model.Closes(bars), period), nil
}
