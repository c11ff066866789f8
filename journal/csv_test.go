package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCSVBasic(t *testing.T) {
	t.Parallel()

	in := `Date,Ticker,Strategy,Entry Price,Exit Price,Quantity,Fees
2026-03-05,aapl,covered call,1.10,0.40,2,-1.30
2026-03-06,SPY,iron condor,,,1,-2.60
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{DefaultFeePerContract: -0.65})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Trades, 2)

	first := res.Trades[0]
	assert.Equal(t, "AAPL", first.Ticker)
	assert.Equal(t, "covered call", first.Strategy)
	assert.InDelta(t, (0.40-1.10)*2-1.30, first.NetPL, 1e-9)
	assert.Equal(t, Loss, first.Outcome)

	second := res.Trades[1]
	assert.Equal(t, "SPY", second.Ticker)
	assert.InDelta(t, -2.60, second.NetPL, 1e-9)
}

func TestImportCSVSkipsRowsMissingTicker(t *testing.T) {
	t.Parallel()

	in := `date,ticker,premium
2026-01-02,SPY,100
2026-01-03,,100
2026-01-04,QQQ,50
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Trades, 2)
	for _, tr := range res.Trades {
		assert.NotEmpty(t, tr.Ticker)
	}
}

func TestImportCSVSkipsRowsMissingDate(t *testing.T) {
	t.Parallel()

	in := `date,ticker
,SPY
not-a-date,QQQ
2026-01-02,IWM
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, "IWM", res.Trades[0].Ticker)
}

func TestImportCSVQuotedCommas(t *testing.T) {
	t.Parallel()

	in := `date,ticker,notes
2026-02-01,TSLA,"rolled out, and down, for a credit"
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, "rolled out, and down, for a credit", res.Trades[0].Notes)
}

func TestImportCSVHeaderAliases(t *testing.T) {
	t.Parallel()

	in := `TRADE DATE,Symbol,Type,Qty,P&L,Result
01/15/2026,msft,Call,3,42.50,w
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	tr := res.Trades[0]
	assert.Equal(t, "MSFT", tr.Ticker)
	assert.Equal(t, "Call", tr.OptionType)
	assert.Equal(t, 3.0, tr.Quantity)
	assert.InDelta(t, 42.50, tr.NetPL, 1e-9)
	assert.Equal(t, Win, tr.Outcome)
	assert.Equal(t, 2026, tr.Date.Year())
}

func TestImportCSVDefaults(t *testing.T) {
	t.Parallel()

	in := `date,ticker,premium
2026-04-01,AMD,100
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{DefaultFeePerContract: -0.65})
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	tr := res.Trades[0]
	assert.Equal(t, 1.0, tr.Quantity)
	assert.InDelta(t, -0.65, tr.Fees, 1e-9)
	assert.InDelta(t, 99.35, tr.NetPL, 1e-9)
	assert.Equal(t, Win, tr.Outcome)
}

func TestImportCSVCurrencyFormatting(t *testing.T) {
	t.Parallel()

	in := `date,ticker,premium,fees
2026-04-02,NVDA,"$1,250.00",-$2.60
`
	res, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.InDelta(t, 1247.40, res.Trades[0].NetPL, 1e-9)
}

func TestImportCSVEmptyInput(t *testing.T) {
	t.Parallel()

	res, err := ImportCSV(strings.NewReader(""), ImportOptions{})
	assert.NoError(t, err)
	assert.Empty(t, res.Trades)
	assert.Equal(t, 0, res.Skipped)
}

func TestExportCSVHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	line, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, strings.Join(ExportColumns, ","), line)
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	in := `date,ticker,strategy,option_type,strike,quantity,entry_price,exit_price,premium,fees,notes
2026-03-05,AAPL,covered call,Call,200,2,1.10,0.40,0,-1.30,"monthly, ATM"
2026-03-06,SPY,iron condor,Spread,0,1,0,0,85,-2.60,
2026-03-09,QQQ,long put,Put,430,1,3.20,1.10,0,-0.65,stopped out
`
	orig, err := ImportCSV(strings.NewReader(in), ImportOptions{})
	require.NoError(t, err)
	require.Len(t, orig.Trades, 3)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, orig.Trades))

	again, err := ImportCSV(&buf, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Skipped)
	require.Len(t, again.Trades, len(orig.Trades))

	for i := range orig.Trades {
		want, got := orig.Trades[i], again.Trades[i]
		assert.True(t, want.Date.Equal(got.Date))
		assert.Equal(t, want.Ticker, got.Ticker)
		assert.Equal(t, want.Strategy, got.Strategy)
		assert.Equal(t, want.OptionType, got.OptionType)
		assert.Equal(t, want.Strike, got.Strike)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.Equal(t, want.EntryPrice, got.EntryPrice)
		assert.Equal(t, want.ExitPrice, got.ExitPrice)
		assert.Equal(t, want.Premium, got.Premium)
		assert.Equal(t, want.Fees, got.Fees)
		assert.InDelta(t, want.NetPL, got.NetPL, 1e-9)
		assert.Equal(t, want.Outcome, got.Outcome)
		assert.Equal(t, want.Notes, got.Notes)
	}
}
