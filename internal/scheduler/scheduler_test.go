package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"TrendSentry/internal/collector"
	"TrendSentry/internal/ledger"
	"TrendSentry/internal/model"
	"TrendSentry/internal/news"
	"TrendSentry/internal/position"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/sentiment"
	"TrendSentry/internal/session"
	"TrendSentry/internal/strategy"
)

type fakeRecorder struct {
	cycles []*recorder.CycleRecord
	trades []*model.CompletedTrade
}

func (f *fakeRecorder) RecordCycle(rec *recorder.CycleRecord) error { f.cycles = append(f.cycles, rec); return nil }
func (f *fakeRecorder) RecordTrade(tr *model.CompletedTrade) error  { f.trades = append(f.trades, tr); return nil }
func (f *fakeRecorder) Close() error                                { return nil }

// buyBars yields an upward SMA crossover with RSI below overbought.
func buyBars() []model.OHLCV {
	closes := make([]float64, 0, 20)
	for i := 0; i < 18; i++ {
		closes = append(closes, 100)
	}
	closes = append(closes, 95, 103)
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: start.Add(time.Duration(i) * 15 * time.Minute), Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return bars
}

func flatBars() []model.OHLCV {
	bars := buyBars()
	for i := range bars {
		bars[i].Close = 100
	}
	return bars
}

func newTestScheduler(t *testing.T, fetcher collector.Fetcher, provider news.Provider, at time.Time) (*Scheduler, *fakeRecorder) {
	t.Helper()
	dir := t.TempDir()
	csvLedger := ledger.NewCSVLedger(filepath.Join(dir, "trades.csv"), "₹")
	book, err := position.NewBook(filepath.Join(dir, "state.json"), "RELIANCE.NS", csvLedger)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	cal, err := session.NewCalendar("UTC", "09:15", "15:30", []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	fr := &fakeRecorder{}
	return &Scheduler{
		Fetcher:  fetcher,
		Engine:   strategy.NewEngine(5, 14, 70, 30),
		Filter:   sentiment.NewFilter(provider, "RELIANCE", 10, 5, 0.3, true, zerolog.Nop()),
		Book:     book,
		Ledger:   csvLedger,
		Recorder: fr,
		Calendar: cal,
		Params:   Params{Symbol: "RELIANCE.NS", Interval: "15m", LookbackDays: 2, Currency: "₹"},
		Ctx:      context.Background(),
		log:      zerolog.Nop(),
		now:      func() time.Time { return at },
	}, fr
}

var (
	monday   = time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 6, 8, 11, 0, 0, 0, time.UTC)
)

func TestRunCycle_DeniedOutsideSession(t *testing.T) {
	s, fr := newTestScheduler(t, &collector.MockFetcher{Bars: buyBars()}, &news.MockProvider{}, saturday)
	s.runCycle()
	if len(fr.cycles) != 0 {
		t.Error("denied cycle must perform no work")
	}
	if s.Book.Snapshot().IsOpen() {
		t.Error("denied cycle must not mutate the position")
	}
}

func TestRunCycle_AbortsOnFetchError(t *testing.T) {
	s, fr := newTestScheduler(t, &collector.MockFetcher{Err: errors.New("network down")}, &news.MockProvider{}, monday)
	s.runCycle()
	if len(fr.cycles) != 0 {
		t.Error("failed fetch must abort before recording")
	}
	if s.Book.Snapshot().IsOpen() {
		t.Error("failed fetch must not mutate the position")
	}
}

func TestRunCycle_EmptyBarsSkipsQuietly(t *testing.T) {
	s, fr := newTestScheduler(t, &collector.MockFetcher{Bars: []model.OHLCV{}}, &news.MockProvider{}, monday)
	s.runCycle()
	if len(fr.cycles) != 0 || s.Book.Snapshot().IsOpen() {
		t.Error("empty data must skip the cycle with no state mutation")
	}
}

func TestRunCycle_NoSignalStopsBeforeSentiment(t *testing.T) {
	provider := &news.MockProvider{Err: errors.New("must not be called")}
	s, fr := newTestScheduler(t, &collector.MockFetcher{Bars: flatBars()}, provider, monday)
	s.runCycle()
	if len(fr.cycles) != 1 {
		t.Fatalf("expected 1 cycle record, got %d", len(fr.cycles))
	}
	rec := fr.cycles[0]
	if rec.Signal != model.SignalNone || rec.Action != string(position.ActionNone) {
		t.Errorf("unexpected cycle record: %+v", rec)
	}
}

func TestRunCycle_NegativeNewsVetoesEntry(t *testing.T) {
	provider := &news.MockProvider{Titles: []string{
		"Stock plunges as fraud probe widens",
		"Shares crash after bankruptcy fears",
	}}
	s, fr := newTestScheduler(t, &collector.MockFetcher{Bars: buyBars()}, provider, monday)
	s.runCycle()
	if s.Book.Snapshot().IsOpen() {
		t.Error("NEGATIVE sentiment must veto the BUY")
	}
	if len(fr.cycles) != 1 {
		t.Fatalf("expected 1 cycle record, got %d", len(fr.cycles))
	}
	rec := fr.cycles[0]
	if rec.Signal != model.SignalBuy || rec.Sentiment != model.SentimentNegative || rec.Action != string(position.ActionNone) {
		t.Errorf("unexpected cycle record: %+v", rec)
	}
}

func TestHandleCommand(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockFetcher{}, &news.MockProvider{}, monday)

	if got := s.HandleCommand("/start"); !strings.Contains(got, "/report") {
		t.Errorf("help should mention /report: %q", got)
	}
	if got := s.HandleCommand("/report"); !strings.Contains(got, "No completed trades") {
		t.Errorf("empty ledger report: %q", got)
	}
	if got := s.HandleCommand("/position"); !strings.Contains(got, "no open position") {
		t.Errorf("flat position reply: %q", got)
	}
	if got := s.HandleCommand("/unknown"); !strings.Contains(got, "Available commands") {
		t.Errorf("unknown command reply: %q", got)
	}
}
