package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) InsertTrade(t Trade) error {
	_, err := s.db.Exec(`
		INSERT INTO trades
		(trade_id, trade_date, ticker, strategy, option_type, strike, expiration,
		 quantity, entry_price, exit_price, premium, fees, net_pl, outcome,
		 delta, gamma, theta, vega, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Ticker, t.Strategy, t.OptionType, t.Strike, t.Expiration,
		t.Quantity, t.EntryPrice, t.ExitPrice, t.Premium, t.Fees, t.NetPL, t.Outcome,
		t.Greeks.Delta, t.Greeks.Gamma, t.Greeks.Theta, t.Greeks.Vega,
		t.Notes, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *SQLiteStore) UpdateTrade(t Trade) error {
	res, err := s.db.Exec(`
		UPDATE trades SET
		trade_date = ?, ticker = ?, strategy = ?, option_type = ?, strike = ?,
		expiration = ?, quantity = ?, entry_price = ?, exit_price = ?,
		premium = ?, fees = ?, net_pl = ?, outcome = ?,
		delta = ?, gamma = ?, theta = ?, vega = ?, notes = ?, updated_at = ?
		WHERE trade_id = ?`,
		t.Date, t.Ticker, t.Strategy, t.OptionType, t.Strike,
		t.Expiration, t.Quantity, t.EntryPrice, t.ExitPrice,
		t.Premium, t.Fees, t.NetPL, t.Outcome,
		t.Greeks.Delta, t.Greeks.Gamma, t.Greeks.Theta, t.Greeks.Vega,
		t.Notes, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", t.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteTrade(tradeID string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", tradeID)
	}
	return nil
}

const tradeColumns = `trade_id, trade_date, ticker, strategy, option_type, strike, expiration,
	quantity, entry_price, exit_price, premium, fees, net_pl, outcome,
	delta, gamma, theta, vega, notes, created_at, updated_at`

func scanTrade(row interface{ Scan(...any) error }) (Trade, error) {
	var t Trade
	err := row.Scan(
		&t.ID, &t.Date, &t.Ticker, &t.Strategy, &t.OptionType, &t.Strike, &t.Expiration,
		&t.Quantity, &t.EntryPrice, &t.ExitPrice, &t.Premium, &t.Fees, &t.NetPL, &t.Outcome,
		&t.Greeks.Delta, &t.Greeks.Gamma, &t.Greeks.Theta, &t.Greeks.Vega,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetTrade returns a single trade record by ID.
func (s *SQLiteStore) GetTrade(tradeID string) (Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns all trades ordered by trade date descending, the
// conventional display order.
func (s *SQLiteStore) ListTrades() ([]Trade, error) {
	rows, err := s.db.Query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY trade_date DESC, trade_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPortfolio returns the singleton portfolio row, or ok=false when it has
// never been written.
func (s *SQLiteStore) GetPortfolio() (PortfolioSettings, bool, error) {
	var p PortfolioSettings
	row := s.db.QueryRow(`SELECT starting_capital, current_balance, updated_at FROM portfolio WHERE id = 1`)
	err := row.Scan(&p.StartingCapital, &p.CurrentBalance, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return PortfolioSettings{}, false, nil
	}
	if err != nil {
		return PortfolioSettings{}, false, err
	}
	return p, true, nil
}

func (s *SQLiteStore) SavePortfolio(p PortfolioSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO portfolio (id, starting_capital, current_balance, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		starting_capital = excluded.starting_capital,
		current_balance = excluded.current_balance,
		updated_at = excluded.updated_at`,
		p.StartingCapital, p.CurrentBalance, p.UpdatedAt,
	)
	return err
}

func (s *SQLiteStore) ClearTrades() error {
	_, err := s.db.Exec(`DELETE FROM trades`)
	return err
}

func (s *SQLiteStore) ClearAdjustments() error {
	_, err := s.db.Exec(`DELETE FROM adjustments`)
	return err
}

func (s *SQLiteStore) InsertAdjustment(a Adjustment) error {
	_, err := s.db.Exec(`
		INSERT INTO adjustments (adjustment_id, time, amount, note)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.Time, a.Amount, a.Note,
	)
	return err
}

func (s *SQLiteStore) ListAdjustments() ([]Adjustment, error) {
	rows, err := s.db.Query(`SELECT adjustment_id, time, amount, note FROM adjustments ORDER BY time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Adjustment
	for rows.Next() {
		var a Adjustment
		if err := rows.Scan(&a.ID, &a.Time, &a.Amount, &a.Note); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
