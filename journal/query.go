package journal

import (
	"strings"
	"time"
)

// Filter selects a subset of trades. Zero fields match everything, so the
// zero Filter is a no-op. The same filter feeds both the displayed table
// and the metrics computation.
type Filter struct {
	Ticker   string
	Strategy string
	From     time.Time
	To       time.Time
}

// Apply returns the trades matching the filter, preserving input order.
// Ticker comparison is case-insensitive; the date range is inclusive on
// both ends.
func (f Filter) Apply(trades []Trade) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Match reports whether a single trade passes the filter.
func (f Filter) Match(t Trade) bool {
	if f.Ticker != "" && !strings.EqualFold(f.Ticker, t.Ticker) {
		return false
	}
	if f.Strategy != "" && f.Strategy != t.Strategy {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	return true
}
