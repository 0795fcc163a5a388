package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	App struct {
		LogLevel   string `yaml:"log_level"`
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"app"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Symbol       string `yaml:"symbol"`
		Interval     string `yaml:"interval"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	News struct {
		APIKey        string  `yaml:"api_key"`
		BaseURL       string  `yaml:"base_url"`
		Query         string  `yaml:"query"`
		PageSize      int     `yaml:"page_size"`
		HeadlineLimit int     `yaml:"headline_limit"`
		Threshold     float64 `yaml:"threshold"`
		FailOpen      bool    `yaml:"fail_open"`
	} `yaml:"news"`
	Strategy struct {
		SMAWindow  int     `yaml:"sma_window"`
		RSIPeriod  int     `yaml:"rsi_period"`
		Overbought float64 `yaml:"overbought"`
		Oversold   float64 `yaml:"oversold"`
	} `yaml:"strategy"`
	Session struct {
		Timezone string `yaml:"timezone"`
		Open     string `yaml:"open"`
		Close    string `yaml:"close"`
		Weekdays []int  `yaml:"weekdays"`
	} `yaml:"session"`
	Schedule struct {
		CycleCron string `yaml:"cycle_cron"`
	} `yaml:"schedule"`
	Position struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"position"`
	Ledger struct {
		File     string `yaml:"file"`
		Currency string `yaml:"currency"`
	} `yaml:"ledger"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("TICKER"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CYCLE_CRON"); v != "" {
		cfg.Schedule.CycleCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.App.LogLevel = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.App.ListenAddr = v
	}
	if v := os.Getenv("NEWS_FAIL_OPEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.News.FailOpen = b
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.App.ListenAddr == "" {
		cfg.App.ListenAddr = ":8080"
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "RELIANCE.NS"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "15m"
	}
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 2
	}
	if cfg.News.BaseURL == "" {
		cfg.News.BaseURL = "https://newsapi.org/v2"
	}
	if cfg.News.PageSize == 0 {
		cfg.News.PageSize = 10
	}
	if cfg.News.HeadlineLimit == 0 {
		cfg.News.HeadlineLimit = 5
	}
	if cfg.News.Threshold == 0 {
		cfg.News.Threshold = 0.3
	}
	if cfg.Strategy.SMAWindow == 0 {
		cfg.Strategy.SMAWindow = 5
	}
	if cfg.Strategy.RSIPeriod == 0 {
		cfg.Strategy.RSIPeriod = 14
	}
	if cfg.Strategy.Overbought == 0 {
		cfg.Strategy.Overbought = 70
	}
	if cfg.Strategy.Oversold == 0 {
		cfg.Strategy.Oversold = 30
	}
	if cfg.Session.Timezone == "" {
		cfg.Session.Timezone = "Asia/Kolkata"
	}
	if cfg.Session.Open == "" {
		cfg.Session.Open = "09:15"
	}
	if cfg.Session.Close == "" {
		cfg.Session.Close = "15:30"
	}
	if len(cfg.Session.Weekdays) == 0 {
		cfg.Session.Weekdays = []int{1, 2, 3, 4, 5}
	}
	if cfg.Schedule.CycleCron == "" {
		cfg.Schedule.CycleCron = "0 */15 * * * *"
	}
	if cfg.Position.StateFile == "" {
		cfg.Position.StateFile = "data/trade_state.json"
	}
	if cfg.Ledger.File == "" {
		cfg.Ledger.File = "data/completed_trades.csv"
	}
	if cfg.Ledger.Currency == "" {
		cfg.Ledger.Currency = "₹"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trend_sentry.db"
	}
}

// Validate checks that all required fields are set. Missing credentials are
// the only fatal startup condition.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.News.APIKey == "" {
		return fmt.Errorf("news.api_key is required")
	}
	if c.Strategy.SMAWindow <= 0 || c.Strategy.RSIPeriod <= 0 {
		return fmt.Errorf("strategy windows must be positive")
	}
	if c.Strategy.Oversold >= c.Strategy.Overbought {
		return fmt.Errorf("strategy.oversold must be below strategy.overbought")
	}
	return nil
}
