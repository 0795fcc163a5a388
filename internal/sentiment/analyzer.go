package sentiment

import (
	"context"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"TrendSentry/internal/model"
	"TrendSentry/internal/news"
)

// Score computes the polarity of a single headline in [-1, 1]. Matched token
// weights are averaged; a negator preceding a token flips its sign.
func Score(headline string) float64 {
	tokens := strings.FieldsFunc(strings.ToLower(headline), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var sum float64
	var matched int
	negate := false
	for _, tok := range tokens {
		if negators[tok] {
			negate = true
			continue
		}
		if w, ok := valence[tok]; ok {
			if negate {
				w = -w
			}
			sum += w
			matched++
		}
		negate = false
	}
	if matched == 0 {
		return 0
	}
	score := sum / float64(matched)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// Classify sums per-headline polarities and maps the total to a category.
func Classify(headlines []string, threshold float64) model.Sentiment {
	var total float64
	for _, h := range headlines {
		total += Score(h)
	}
	switch {
	case total > threshold:
		return model.SentimentPositive
	case total < -threshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// Filter gates trading signals on news sentiment. It is a pure veto and never
// initiates action. FailOpen is an explicit policy: when set, a provider
// failure or an empty result classifies as NEUTRAL so a transient news outage
// never blocks trading.
type Filter struct {
	Provider      news.Provider
	Query         string
	PageSize      int
	HeadlineLimit int
	Threshold     float64
	FailOpen      bool

	log zerolog.Logger
}

// NewFilter creates a sentiment filter over the given headline provider.
func NewFilter(provider news.Provider, query string, pageSize, headlineLimit int, threshold float64, failOpen bool, log zerolog.Logger) *Filter {
	return &Filter{
		Provider:      provider,
		Query:         query,
		PageSize:      pageSize,
		HeadlineLimit: headlineLimit,
		Threshold:     threshold,
		FailOpen:      failOpen,
		log:           log,
	}
}

// Assess fetches recent headlines and classifies them.
func (f *Filter) Assess(ctx context.Context) (model.Sentiment, error) {
	headlines, err := f.Provider.Headlines(ctx, f.Query, f.PageSize)
	if err != nil || len(headlines) == 0 {
		if f.FailOpen {
			f.log.Warn().Err(err).Int("headlines", len(headlines)).
				Msg("news source unavailable, failing open to NEUTRAL")
			return model.SentimentNeutral, nil
		}
		return model.SentimentNeutral, err
	}
	if len(headlines) > f.HeadlineLimit {
		headlines = headlines[:f.HeadlineLimit]
	}
	return Classify(headlines, f.Threshold), nil
}
