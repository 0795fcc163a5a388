package notifier

import (
	"fmt"
	"strings"

	"TrendSentry/internal/ledger"
	"TrendSentry/internal/model"
	"TrendSentry/internal/position"
)

// FormatEntry formats an entry transition into a Telegram message.
func FormatEntry(symbol, currency string, tr *position.Transition) string {
	return fmt.Sprintf("✅ <b>ENTRY</b>: Bought %s at %s%.2f. News: %s.",
		symbol, currency, tr.Price, tr.Sentiment)
}

// FormatExit formats an exit transition with realized P/L.
func FormatExit(symbol, currency string, tr *position.Transition) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("❌ <b>EXIT</b>: Sold %s at %s%.2f.\n", symbol, currency, tr.Price))
	b.WriteString(fmt.Sprintf("   ▶️ Profit/Loss: %s%.2f (%.2f%%)\n",
		currency, tr.Trade.ProfitLoss, tr.Trade.ProfitLossPct))
	b.WriteString(fmt.Sprintf("   ▶️ News: %s.", tr.Sentiment))
	return b.String()
}

// FormatReport formats the ledger summary for the /report command.
func FormatReport(s *ledger.Summary, currency string) string {
	if s.Total == 0 {
		return "No completed trades have been logged yet."
	}
	var b strings.Builder
	b.WriteString("📊 <b>Trade Report</b>\n\n")
	b.WriteString(fmt.Sprintf("<b>Total Trades:</b> %d\n", s.Total))
	b.WriteString(fmt.Sprintf("<b>Wins:</b> %d | <b>Losses:</b> %d\n", s.Wins, s.Losses))
	b.WriteString(fmt.Sprintf("<b>Win Rate:</b> %.2f%%\n", s.WinRate))
	b.WriteString(fmt.Sprintf("<b>Total P/L:</b> %s%.2f\n\n", currency, s.TotalPnL))
	b.WriteString("Sending the full trade log as a file...")
	return b.String()
}

// FormatPosition formats the current position for the /position command.
func FormatPosition(symbol, currency string, state model.PositionState) string {
	if !state.IsOpen() {
		return fmt.Sprintf("📍 %s: no open position.", symbol)
	}
	return fmt.Sprintf("📍 %s: LONG since %s at %s%.2f.",
		symbol, state.EntryTime.Format("2006-01-02 15:04"), currency, state.EntryPrice)
}

// FormatHelp is the static /start reply.
func FormatHelp() string {
	return "Hello! I am TrendSentry, your trading signal bot.\n" +
		"I automatically check for trades every 15 minutes during market hours.\n" +
		"Type /report to get a summary of all completed trades."
}
