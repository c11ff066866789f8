// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	trade_date DATETIME NOT NULL,
	ticker TEXT NOT NULL,
	strategy TEXT NOT NULL,
	option_type TEXT NOT NULL,
	strike REAL NOT NULL,
	expiration DATETIME,
	quantity REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	premium REAL NOT NULL,
	fees REAL NOT NULL,
	net_pl REAL NOT NULL,
	outcome TEXT NOT NULL,
	delta REAL NOT NULL DEFAULT 0,
	gamma REAL NOT NULL DEFAULT 0,
	theta REAL NOT NULL DEFAULT 0,
	vega REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);
CREATE INDEX IF NOT EXISTS idx_trades_ticker ON trades(ticker);

CREATE TABLE IF NOT EXISTS portfolio (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	starting_capital REAL NOT NULL,
	current_balance REAL NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS adjustments (
	adjustment_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	amount REAL NOT NULL,
	note TEXT NOT NULL DEFAULT ''
);
`
