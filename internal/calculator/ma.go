package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"

	"TrendSentry/internal/model"
)

// SMASeries computes the simple moving average series over closing prices.
// Entries before the warm-up index (window-1) are zero.
func SMASeries(bars []model.OHLCV, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	if len(bars) < window {
		return nil, errors.New("not enough data for SMA calculation")
	}
	return talib.Sma(model.Closes(bars), window), nil
}
