package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"TrendSentry/internal/collector"
	"TrendSentry/internal/ledger"
	"TrendSentry/internal/model"
	"TrendSentry/internal/notifier"
	"TrendSentry/internal/position"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/sentiment"
	"TrendSentry/internal/session"
	"TrendSentry/internal/strategy"
	"TrendSentry/internal/web"
)

// Params carries the instrument settings the cycle needs.
type Params struct {
	Symbol       string
	Interval     string
	LookbackDays int
	Currency     string
}

// Scheduler drives the periodic evaluation cycle and the command surface.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  collector.Fetcher
	Engine   *strategy.Engine
	Filter   *sentiment.Filter
	Book     *position.Book
	Ledger   *ledger.CSVLedger
	Recorder recorder.Recorder
	Notifier *notifier.TelegramNotifier
	Calendar *session.Calendar
	Params   Params
	Ctx      context.Context

	log zerolog.Logger
	now func() time.Time
}

// NewScheduler creates a Scheduler. Cycles that are still in flight when the
// next tick fires are skipped, never overlapped.
func NewScheduler(ctx context.Context, fetcher collector.Fetcher, engine *strategy.Engine,
	filter *sentiment.Filter, book *position.Book, lg *ledger.CSVLedger, rec recorder.Recorder,
	tn *notifier.TelegramNotifier, cal *session.Calendar, params Params, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Fetcher:  fetcher,
		Engine:   engine,
		Filter:   filter,
		Book:     book,
		Ledger:   lg,
		Recorder: rec,
		Notifier: tn,
		Calendar: cal,
		Params:   params,
		Ctx:      ctx,
		log:      log,
		now:      time.Now,
	}
}

// Register adds the evaluation cycle to the cron table.
func (s *Scheduler) Register(cycleCron string) error {
	if _, err := s.Cron.AddFunc(cycleCron, s.runCycle); err != nil {
		return fmt.Errorf("register cycle task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunCycleNow executes one evaluation cycle immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunCycleNow() {
	s.runCycle()
}

// runCycle is one full evaluation: gate, fetch, signal, sentiment, position.
// Any data failure aborts cleanly with no state mutation; only the position
// book mutates state, and at most once.
func (s *Scheduler) runCycle() {
	now := s.now()
	if !s.Calendar.Admit(now) {
		s.log.Debug().Time("now", now).Msg("outside trading session, cycle denied")
		return
	}
	s.log.Info().Time("now", now).Msg("running trade check")

	bars, err := s.Fetcher.FetchIntradayBars(s.Params.Symbol, s.Params.Interval, s.Params.LookbackDays)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch bars")
		web.CyclesTotal.WithLabelValues("data_error").Inc()
		return
	}
	if len(bars) == 0 {
		s.log.Info().Msg("no market data available, skipping cycle")
		web.CyclesTotal.WithLabelValues("no_data").Inc()
		return
	}

	signal, snap, err := s.Engine.Evaluate(bars)
	if err != nil {
		s.log.Error().Err(err).Msg("evaluate indicators")
		web.CyclesTotal.WithLabelValues("indicator_error").Inc()
		return
	}
	if snap == nil {
		s.log.Info().Int("bars", len(bars)).Msg("insufficient history, skipping cycle")
		web.CyclesTotal.WithLabelValues("warmup").Inc()
		return
	}
	if signal == model.SignalNone {
		s.log.Info().Msg("no technical signal found")
		s.recordCycle(now, snap, signal, "", string(position.ActionNone))
		web.CyclesTotal.WithLabelValues("no_signal").Inc()
		return
	}

	sent, err := s.Filter.Assess(s.Ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("sentiment unavailable and fail-open disabled, skipping cycle")
		web.CyclesTotal.WithLabelValues("sentiment_error").Inc()
		return
	}

	tr, err := s.Book.Apply(signal, sent, snap.Close, now)
	if err != nil {
		s.log.Error().Err(err).Msg("apply position transition")
		web.CyclesTotal.WithLabelValues("persistence_error").Inc()
		return
	}

	s.recordCycle(now, snap, signal, sent, string(tr.Action))
	web.CyclesTotal.WithLabelValues("ok").Inc()

	switch tr.Action {
	case position.ActionEntry:
		web.TradesTotal.WithLabelValues("entry").Inc()
		s.log.Info().Float64("price", tr.Price).Str("sentiment", string(sent)).Msg("position opened")
		s.trySend(notifier.FormatEntry(s.Params.Symbol, s.Params.Currency, tr))

	case position.ActionExit:
		web.TradesTotal.WithLabelValues("exit").Inc()
		s.log.Info().Float64("price", tr.Price).Float64("pnl", tr.Trade.ProfitLoss).Msg("position closed")
		if err := s.Recorder.RecordTrade(tr.Trade); err != nil {
			s.log.Error().Err(err).Msg("record trade")
		}
		s.trySend(notifier.FormatExit(s.Params.Symbol, s.Params.Currency, tr))

	default:
		s.log.Info().Str("signal", string(signal)).Str("sentiment", string(sent)).
			Bool("open", s.Book.Snapshot().IsOpen()).Msg("signal found, no action taken")
	}
}

// HandleCommand processes a user command and returns a reply. Commands never
// mutate core state.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/start":
		return notifier.FormatHelp()
	case "/report":
		sum, err := s.Ledger.Summarize()
		if err != nil {
			s.log.Error().Err(err).Msg("summarize ledger")
			return "An error occurred while generating the report."
		}
		msg := notifier.FormatReport(sum, s.Params.Currency)
		if sum.Total == 0 {
			return msg
		}
		s.trySend(msg)
		if err := s.Notifier.SendDocument(s.Ctx, s.Ledger.Path()); err != nil {
			s.log.Error().Err(err).Msg("send trade log")
			web.NotifyFailures.Inc()
		}
		return ""
	case "/position":
		return notifier.FormatPosition(s.Params.Symbol, s.Params.Currency, s.Book.Snapshot())
	default:
		return "Available commands:\n• /start\n• /report\n• /position"
	}
}

func (s *Scheduler) recordCycle(now time.Time, snap *model.IndicatorSnapshot, signal model.Signal, sent model.Sentiment, action string) {
	if err := s.Recorder.RecordCycle(&recorder.CycleRecord{
		Time:      now,
		Price:     snap.Close,
		SMA:       snap.SMA,
		RSI:       snap.RSI,
		Signal:    signal,
		Sentiment: sent,
		Action:    action,
	}); err != nil {
		s.log.Error().Err(err).Msg("record cycle")
	}
}

// trySend delivers a notification after the transition is already committed;
// a failure is logged and never rolls anything back.
func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification")
		web.NotifyFailures.Inc()
	}
}
