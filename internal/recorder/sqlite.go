package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"TrendSentry/internal/model"
)

// SQLiteRecorder persists evaluation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the command surface can read while a cycle writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cycles (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			price     REAL,
			sma       REAL,
			rsi       REAL,
			signal    TEXT,
			sentiment TEXT,
			action    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ts ON cycles(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_time  INTEGER NOT NULL,
			exit_time   INTEGER NOT NULL,
			symbol      TEXT,
			side        TEXT,
			entry_price REAL,
			exit_price  REAL,
			pnl         REAL,
			pnl_pct     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_exit ON trades(exit_time)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO cycles
		(timestamp, price, sma, rsi, signal, sentiment, action)
		VALUES (?,?,?,?,?,?,?)`,
		rec.Time.Unix(), rec.Price, rec.SMA, rec.RSI,
		string(rec.Signal), string(rec.Sentiment), rec.Action,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(trade *model.CompletedTrade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trades
		(entry_time, exit_time, symbol, side, entry_price, exit_price, pnl, pnl_pct)
		VALUES (?,?,?,?,?,?,?,?)`,
		trade.EntryTime.Unix(), trade.ExitTime.Unix(), trade.Symbol, string(trade.Side),
		trade.EntryPrice, trade.ExitPrice, trade.ProfitLoss, trade.ProfitLossPct,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
