package model

// Signal is the directional decision produced by the indicator engine.
type Signal string

const (
	SignalNone Signal = "NONE"
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
)

// Sentiment is the coarse news-sentiment category used to veto signals.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)

// IndicatorSnapshot holds the indicator values for the most recent bar.
type IndicatorSnapshot struct {
	Close float64
	SMA   float64
	RSI   float64
}
