package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testTrade(id string) Trade {
	now := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	return Trade{
		ID:         id,
		Date:       now,
		Ticker:     "AAPL",
		Strategy:   "covered call",
		OptionType: "Call",
		Strike:     200,
		Expiration: now.AddDate(0, 1, 0),
		Quantity:   2,
		EntryPrice: 1.10,
		ExitPrice:  0.40,
		Fees:       -1.30,
		NetPL:      -2.70,
		Outcome:    Loss,
		Greeks:     Greeks{Delta: 0.31, Theta: -0.05},
		Notes:      "monthly",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestSQLiteInsertAndGet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	want := testTrade("T1")
	require.NoError(t, db.InsertTrade(want))

	got, err := db.GetTrade("T1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.Date.Equal(got.Date))
	assert.Equal(t, want.Ticker, got.Ticker)
	assert.Equal(t, want.Strategy, got.Strategy)
	assert.InDelta(t, want.NetPL, got.NetPL, 1e-9)
	assert.Equal(t, want.Outcome, got.Outcome)
	assert.InDelta(t, want.Greeks.Delta, got.Greeks.Delta, 1e-9)
	assert.Equal(t, want.Notes, got.Notes)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	_, err := db.GetTrade("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteListOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	older := testTrade("T1")
	older.Date = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	newer := testTrade("T2")
	newer.Date = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.InsertTrade(older))
	require.NoError(t, db.InsertTrade(newer))

	got, err := db.ListTrades()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T2", got[0].ID) // date-descending
	assert.Equal(t, "T1", got[1].ID)
}

func TestSQLiteUpdateAndDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	tr := testTrade("T1")
	require.NoError(t, db.InsertTrade(tr))

	tr.ExitPrice = 0.10
	tr.NetPL = -3.30
	require.NoError(t, db.UpdateTrade(tr))

	got, err := db.GetTrade("T1")
	require.NoError(t, err)
	assert.InDelta(t, -3.30, got.NetPL, 1e-9)

	require.NoError(t, db.DeleteTrade("T1"))
	_, err = db.GetTrade("T1")
	assert.Error(t, err)

	assert.Error(t, db.UpdateTrade(tr))
	assert.Error(t, db.DeleteTrade("T1"))
}

func TestSQLitePortfolioRow(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	_, ok, err := db.GetPortfolio()
	require.NoError(t, err)
	assert.False(t, ok)

	p := PortfolioSettings{
		StartingCapital: 10000,
		CurrentBalance:  10500,
		UpdatedAt:       time.Now().UTC(),
	}
	require.NoError(t, db.SavePortfolio(p))

	// upsert replaces the singleton
	p.CurrentBalance = 9800
	require.NoError(t, db.SavePortfolio(p))

	got, ok, err := db.GetPortfolio()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 10000, got.StartingCapital, 1e-9)
	assert.InDelta(t, 9800, got.CurrentBalance, 1e-9)
}

func TestSQLiteAdjustments(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	a1 := Adjustment{ID: "A1", Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 500, Note: "deposit"}
	a2 := Adjustment{ID: "A2", Time: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Amount: -200, Note: "withdrawal"}
	require.NoError(t, db.InsertAdjustment(a2))
	require.NoError(t, db.InsertAdjustment(a1))

	got, err := db.ListAdjustments()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].ID) // time-ascending
	assert.InDelta(t, -200, got[1].Amount, 1e-9)
}
