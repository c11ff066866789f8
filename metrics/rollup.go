package metrics

import (
	"sort"

	"github.com/rustyeddy/tradelog/journal"
)

// Rollup is one bucket of a per-dimension breakdown.
type Rollup struct {
	Key   string
	Stats TradeStats
}

// RollupByStrategy groups trades by strategy label. Buckets come back in
// sorted key order.
func RollupByStrategy(trades []journal.Trade) []Rollup {
	return rollup(trades, func(t journal.Trade) string {
		if t.Strategy == "" {
			return "(none)"
		}
		return t.Strategy
	})
}

// RollupByTicker groups trades by ticker symbol.
func RollupByTicker(trades []journal.Trade) []Rollup {
	return rollup(trades, func(t journal.Trade) string { return t.Ticker })
}

// RollupByMonth groups trades by the YYYY-MM of their trade date.
func RollupByMonth(trades []journal.Trade) []Rollup {
	return rollup(trades, func(t journal.Trade) string { return t.Date.Format("2006-01") })
}

func rollup(trades []journal.Trade, key func(journal.Trade) string) []Rollup {
	buckets := map[string][]journal.Trade{}
	for _, t := range trades {
		k := key(t)
		buckets[k] = append(buckets[k], t)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Rollup, 0, len(keys))
	for _, k := range keys {
		out = append(out, Rollup{Key: k, Stats: Compute(buckets[k])})
	}
	return out
}
