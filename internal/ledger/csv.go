package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"TrendSentry/internal/model"
)

var header = []string{
	"Entry Time", "Exit Time", "Ticker", "Trade Type",
	"Entry Price", "Exit Price", "Profit/Loss", "P/L %",
}

// Summary aggregates the ledger. WinRate is a percentage (0 when empty).
type Summary struct {
	Total    int
	Wins     int
	Losses   int
	WinRate  float64
	TotalPnL float64
}

// CSVLedger durably records completed trades as an append-only CSV file with
// a header row. Price and P/L columns are currency-formatted for display;
// summary computations always parse back to raw numbers.
type CSVLedger struct {
	mu       sync.Mutex
	filePath string
	currency string
}

// NewCSVLedger creates a ledger writing to the given file.
func NewCSVLedger(filePath, currency string) *CSVLedger {
	return &CSVLedger{filePath: filePath, currency: currency}
}

// Path returns the ledger file location, for attaching to reports.
func (l *CSVLedger) Path() string { return l.filePath }

// Append writes one completed trade. The header row is written only when the
// file is created.
func (l *CSVLedger) Append(trade *model.CompletedTrade) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.filePath), 0o755); err != nil {
		return err
	}
	_, statErr := os.Stat(l.filePath)
	headerNeeded := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if headerNeeded {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}
	row := []string{
		trade.EntryTime.Format(time.RFC3339),
		trade.ExitTime.Format(time.RFC3339),
		trade.Symbol,
		string(trade.Side),
		fmt.Sprintf("%s%.2f", l.currency, trade.EntryPrice),
		fmt.Sprintf("%s%.2f", l.currency, trade.ExitPrice),
		fmt.Sprintf("%s%.2f", l.currency, trade.ProfitLoss),
		fmt.Sprintf("%.2f%%", trade.ProfitLossPct),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Summarize derives summary statistics over all recorded trades. A missing or
// empty ledger yields a zero-valued summary, not an error.
func (l *CSVLedger) Summarize() (*Summary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Summary{}, nil
		}
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(rows) <= 1 {
		return &Summary{}, nil
	}

	s := &Summary{}
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}
		pnl, err := l.parseAmount(row[6])
		if err != nil {
			return nil, fmt.Errorf("parse ledger P/L %q: %w", row[6], err)
		}
		s.Total++
		if pnl > 0 {
			s.Wins++
		} else {
			s.Losses++
		}
		s.TotalPnL += pnl
	}
	if s.Total > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Total) * 100
	}
	return s, nil
}

func (l *CSVLedger) parseAmount(v string) (float64, error) {
	v = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), l.currency))
	return strconv.ParseFloat(v, 64)
}
