package journal

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/pkg/id"
)

// Store owns the in-memory snapshot of the journal and its SQLite backing.
// All mutation goes through the methods below: each one validates, persists,
// then updates the snapshot, so reads always reflect the last completed
// write. CurrentBalance is recomputed from the invariant on every mutation
// rather than patched additively, which makes delete the exact inverse of
// add.
type Store struct {
	db  *SQLiteStore
	log *zap.Logger

	trades      []Trade // date-descending
	adjustments []Adjustment
	portfolio   PortfolioSettings
}

// Open loads the journal snapshot from the SQLite file at path, creating
// the schema on first use.
func Open(path string, startingCapital float64, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	s := &Store{db: db, log: log}

	s.trades, err = db.ListTrades()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load trades: %w", err)
	}
	s.adjustments, err = db.ListAdjustments()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load adjustments: %w", err)
	}

	p, ok, err := db.GetPortfolio()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	if !ok {
		p = PortfolioSettings{StartingCapital: startingCapital}
	}
	s.portfolio = p

	if err := s.recomputeBalance(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Trades returns the current snapshot, date-descending. The caller gets a
// copy and cannot mutate store state through it.
func (s *Store) Trades() []Trade {
	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

func (s *Store) Adjustments() []Adjustment {
	out := make([]Adjustment, len(s.adjustments))
	copy(out, s.adjustments)
	return out
}

func (s *Store) Portfolio() PortfolioSettings {
	return s.portfolio
}

func (s *Store) GetTrade(tradeID string) (Trade, error) {
	for _, t := range s.trades {
		if t.ID == tradeID {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q not found", tradeID)
}

// AddTrade validates, normalizes, and persists a new trade, then folds it
// into the snapshot and balance. The stored trade is returned with its
// assigned ID.
func (s *Store) AddTrade(t Trade) (Trade, error) {
	Normalize(&t)
	if err := Validate(t); err != nil {
		return Trade{}, err
	}

	now := time.Now().UTC()
	t.ID = id.New()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.db.InsertTrade(t); err != nil {
		return Trade{}, fmt.Errorf("insert trade: %w", err)
	}

	s.trades = append(s.trades, t)
	s.sortTrades()
	if err := s.recomputeBalance(); err != nil {
		return Trade{}, err
	}

	s.log.Info("trade added",
		zap.String("id", t.ID),
		zap.String("ticker", t.Ticker),
		zap.Float64("net_pl", t.NetPL))
	return t, nil
}

// UpdateTrade replaces an existing trade's fields, recomputing derived
// values. CreatedAt is preserved.
func (s *Store) UpdateTrade(t Trade) (Trade, error) {
	prev, err := s.GetTrade(t.ID)
	if err != nil {
		return Trade{}, err
	}

	Normalize(&t)
	if err := Validate(t); err != nil {
		return Trade{}, err
	}
	t.CreatedAt = prev.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	if err := s.db.UpdateTrade(t); err != nil {
		return Trade{}, fmt.Errorf("update trade: %w", err)
	}

	for i := range s.trades {
		if s.trades[i].ID == t.ID {
			s.trades[i] = t
			break
		}
	}
	s.sortTrades()
	if err := s.recomputeBalance(); err != nil {
		return Trade{}, err
	}
	return t, nil
}

// DeleteTrade removes a trade and rolls its P/L back out of the balance.
func (s *Store) DeleteTrade(tradeID string) error {
	if _, err := s.GetTrade(tradeID); err != nil {
		return err
	}
	if err := s.db.DeleteTrade(tradeID); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	kept := s.trades[:0]
	for _, t := range s.trades {
		if t.ID != tradeID {
			kept = append(kept, t)
		}
	}
	s.trades = kept
	return s.recomputeBalance()
}

// ImportTrades persists a batch of normalized trades from the CSV importer.
// Each row is validated and inserted on its own; a failing row is logged and
// skipped without aborting the batch. Returns the number added and the
// number skipped at this stage.
func (s *Store) ImportTrades(trades []Trade) (added, skipped int) {
	now := time.Now().UTC()
	for _, t := range trades {
		Normalize(&t)
		if err := Validate(t); err != nil {
			s.log.Warn("skipping imported trade", zap.Error(err))
			skipped++
			continue
		}
		t.ID = id.New()
		t.CreatedAt = now
		t.UpdatedAt = now
		if err := s.db.InsertTrade(t); err != nil {
			s.log.Warn("skipping imported trade", zap.String("ticker", t.Ticker), zap.Error(err))
			skipped++
			continue
		}
		s.trades = append(s.trades, t)
		added++
	}
	s.sortTrades()
	if err := s.recomputeBalance(); err != nil {
		s.log.Error("balance update after import", zap.Error(err))
	}
	return added, skipped
}

// AddAdjustment records a manual balance adjustment.
func (s *Store) AddAdjustment(amount float64, note string) (Adjustment, error) {
	a := Adjustment{
		ID:     id.New(),
		Time:   time.Now().UTC(),
		Amount: amount,
		Note:   note,
	}
	if err := s.db.InsertAdjustment(a); err != nil {
		return Adjustment{}, fmt.Errorf("insert adjustment: %w", err)
	}
	s.adjustments = append(s.adjustments, a)
	return a, s.recomputeBalance()
}

// SetStartingCapital resets the portfolio baseline and rebuilds the balance.
func (s *Store) SetStartingCapital(capital float64) error {
	if capital < 0 {
		return fmt.Errorf("starting capital must not be negative")
	}
	s.portfolio.StartingCapital = capital
	return s.recomputeBalance()
}

// BalanceHistory returns the chronological balance series: the starting
// capital followed by the balance after each trade and adjustment in time
// order. Input for drawdown and Sharpe computation.
func (s *Store) BalanceHistory() []float64 {
	type event struct {
		at     time.Time
		amount float64
	}
	events := make([]event, 0, len(s.trades)+len(s.adjustments))
	for _, t := range s.trades {
		events = append(events, event{t.Date, t.NetPL})
	}
	for _, a := range s.adjustments {
		events = append(events, event{a.Time, a.Amount})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].at.Before(events[j].at) })

	history := make([]float64, 0, len(events)+1)
	balance := s.portfolio.StartingCapital
	history = append(history, balance)
	for _, e := range events {
		balance += e.amount
		history = append(history, balance)
	}
	return history
}

func (s *Store) sortTrades() {
	sort.SliceStable(s.trades, func(i, j int) bool {
		if !s.trades[i].Date.Equal(s.trades[j].Date) {
			return s.trades[i].Date.After(s.trades[j].Date)
		}
		return s.trades[i].ID > s.trades[j].ID
	})
}

// recomputeBalance enforces the invariant
// currentBalance = startingCapital + sum(net_pl) + sum(adjustments)
// and persists the portfolio row.
func (s *Store) recomputeBalance() error {
	balance := s.portfolio.StartingCapital
	for _, t := range s.trades {
		balance += t.NetPL
	}
	for _, a := range s.adjustments {
		balance += a.Amount
	}
	s.portfolio.CurrentBalance = balance
	s.portfolio.UpdatedAt = time.Now().UTC()

	if err := s.db.SavePortfolio(s.portfolio); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	return nil
}
