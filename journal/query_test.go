package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "1", Ticker: "AAPL", Strategy: "covered call", Date: day(2026, 1, 10)},
		{ID: "2", Ticker: "SPY", Strategy: "iron condor", Date: day(2026, 2, 10)},
		{ID: "3", Ticker: "AAPL", Strategy: "long put", Date: day(2026, 3, 10)},
		{ID: "4", Ticker: "QQQ", Strategy: "iron condor", Date: day(2026, 4, 10)},
	}

	ids := func(ts []Trade) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "zero_filter_matches_all",
			filter: Filter{},
			want:   []string{"1", "2", "3", "4"},
		},
		{
			name:   "ticker_case_insensitive",
			filter: Filter{Ticker: "aapl"},
			want:   []string{"1", "3"},
		},
		{
			name:   "strategy_equality",
			filter: Filter{Strategy: "iron condor"},
			want:   []string{"2", "4"},
		},
		{
			name:   "date_range_inclusive",
			filter: Filter{From: day(2026, 2, 10), To: day(2026, 3, 10)},
			want:   []string{"2", "3"},
		},
		{
			name:   "from_only",
			filter: Filter{From: day(2026, 3, 1)},
			want:   []string{"3", "4"},
		},
		{
			name:   "combined",
			filter: Filter{Ticker: "AAPL", From: day(2026, 2, 1)},
			want:   []string{"3"},
		},
		{
			name:   "no_match",
			filter: Filter{Ticker: "TSLA"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.filter.Apply(trades)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
