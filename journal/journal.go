// Package journal stores and queries options trade records.
package journal

import (
	"fmt"
	"strings"
	"time"
)

// Outcome values for a closed trade.
const (
	Win  = "Win"
	Loss = "Loss"
)

// Greeks are optional per-trade option sensitivities.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
}

// Trade is one logged options transaction. ID is assigned by the store.
type Trade struct {
	ID         string
	Date       time.Time
	Ticker     string
	Strategy   string
	OptionType string
	Strike     float64
	Expiration time.Time
	Quantity   float64
	EntryPrice float64
	ExitPrice  float64
	Premium    float64
	Fees       float64
	NetPL      float64
	Outcome    string
	Greeks     Greeks
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ComputeNetPL applies the canonical P/L rule: when both entry and exit
// prices are set the trade is priced off the fill difference, otherwise it
// is a premium-only trade. Fees are signed, costs negative.
func ComputeNetPL(t Trade) float64 {
	if t.EntryPrice != 0 && t.ExitPrice != 0 {
		return (t.ExitPrice-t.EntryPrice)*t.Quantity + t.Premium + t.Fees
	}
	return t.Premium + t.Fees
}

// OutcomeFor classifies a net P/L. Breakeven counts as a win.
func OutcomeFor(netPL float64) string {
	if netPL >= 0 {
		return Win
	}
	return Loss
}

// Normalize fills derived and defaulted fields on a trade built from user
// input: ticker case, quantity default, net P/L and outcome.
func Normalize(t *Trade) {
	t.Ticker = strings.ToUpper(strings.TrimSpace(t.Ticker))
	t.Strategy = strings.TrimSpace(t.Strategy)
	if t.Quantity == 0 {
		t.Quantity = 1
	}
	t.NetPL = ComputeNetPL(*t)
	t.Outcome = OutcomeFor(t.NetPL)
}

// Validate checks the fields required of every trade. It does not mutate.
func Validate(t Trade) error {
	if t.Date.IsZero() {
		return fmt.Errorf("trade date is required")
	}
	if strings.TrimSpace(t.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if t.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}

// PortfolioSettings is the singleton balance record. CurrentBalance always
// satisfies startingCapital + sum(trade net P/L) + sum(adjustments).
type PortfolioSettings struct {
	StartingCapital float64
	CurrentBalance  float64
	UpdatedAt       time.Time
}

// Adjustment is a manual balance correction outside of trade P/L.
type Adjustment struct {
	ID     string
	Time   time.Time
	Amount float64
	Note   string
}
