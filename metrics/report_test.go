package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/journal"
)

func TestReportRender(t *testing.T) {
	t.Parallel()

	ts := rollupTrades()
	r := Report{
		Generated:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Stats:      Compute(ts),
		Portfolio:  ComputePortfolio(1000, 1100, []float64{1000, 1100}),
		ByStrategy: RollupByStrategy(ts),
		ByTicker:   RollupByTicker(ts),
		ByMonth:    RollupByMonth(ts),
	}

	text, err := r.Render()
	require.NoError(t, err)

	assert.Contains(t, text, "TRADE JOURNAL SUMMARY")
	assert.Contains(t, text, "Win Rate:")
	assert.Contains(t, text, "By Strategy")
	assert.Contains(t, text, "covered call")
	assert.Contains(t, text, "By Month")
	assert.Contains(t, text, "2026-01")
}

func TestReportRenderNoRollups(t *testing.T) {
	t.Parallel()

	r := Report{Generated: time.Now()}
	r.Stats = Compute([]journal.Trade{})

	text, err := r.Render()
	require.NoError(t, err)
	assert.False(t, strings.Contains(text, "By Strategy"))
	assert.False(t, strings.Contains(text, "By Ticker"))
}
