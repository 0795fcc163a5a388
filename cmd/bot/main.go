package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"TrendSentry/internal/collector"
	"TrendSentry/internal/config"
	"TrendSentry/internal/ledger"
	"TrendSentry/internal/news"
	"TrendSentry/internal/notifier"
	"TrendSentry/internal/position"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/scheduler"
	"TrendSentry/internal/sentiment"
	"TrendSentry/internal/session"
	"TrendSentry/internal/strategy"
	"TrendSentry/internal/util"
	"TrendSentry/internal/web"
)

func main() {
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		lg := util.NewLogger("info")
		lg.Fatal().Err(err).Msg("load config")
	}

	log := util.NewLogger(cfg.App.LogLevel)
	log.Info().Msg("TrendSentry starting...")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Market data fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Str("symbol", cfg.DataSource.Symbol).Msg("data source ready")

	// Signal engine
	engine := strategy.NewEngine(cfg.Strategy.SMAWindow, cfg.Strategy.RSIPeriod,
		cfg.Strategy.Overbought, cfg.Strategy.Oversold)

	// Sentiment filter over the news provider
	query := cfg.News.Query
	if query == "" {
		query = cfg.DataSource.Symbol
	}
	provider := news.NewNewsAPIClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.Proxy)
	filter := sentiment.NewFilter(provider, query, cfg.News.PageSize,
		cfg.News.HeadlineLimit, cfg.News.Threshold, cfg.News.FailOpen, log)

	// Trade ledger and position book
	csvLedger := ledger.NewCSVLedger(cfg.Ledger.File, cfg.Ledger.Currency)
	book, err := position.NewBook(cfg.Position.StateFile, cfg.DataSource.Symbol, csvLedger)
	if err != nil {
		log.Fatal().Err(err).Msg("init position book")
	}

	// Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)

	// History recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Session calendar
	cal, err := session.NewCalendar(cfg.Session.Timezone, cfg.Session.Open,
		cfg.Session.Close, cfg.Session.Weekdays)
	if err != nil {
		log.Fatal().Err(err).Msg("init session calendar")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keep-alive and metrics server
	web.Serve(cfg.App.ListenAddr)
	log.Info().Str("addr", cfg.App.ListenAddr).Msg("keep-alive server up")

	// Scheduler
	sched := scheduler.NewScheduler(ctx, fetcher, engine, filter, book, csvLedger, rec, tn, cal,
		scheduler.Params{
			Symbol:       cfg.DataSource.Symbol,
			Interval:     cfg.DataSource.Interval,
			LookbackDays: cfg.DataSource.LookbackDays,
			Currency:     cfg.Ledger.Currency,
		}, log)
	if err := sched.Register(cfg.Schedule.CycleCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	// Telegram command polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Msg("telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing cycle now")
		go sched.RunCycleNow()
	}

	log.Info().Msg("TrendSentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	log.Info().Msg("TrendSentry stopped")
}
