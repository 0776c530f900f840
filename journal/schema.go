// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	source TEXT NOT NULL,
	net_profit REAL NOT NULL,
	net_profit_pct REAL NOT NULL,
	profit_factor REAL,
	max_draw_down REAL NOT NULL,
	closed_trades INTEGER NOT NULL,
	open_trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_time DATETIME NOT NULL,
	exit_time DATETIME,
	entry_price REAL NOT NULL,
	exit_price REAL,
	contracts REAL NOT NULL,
	profit REAL NOT NULL,
	entry_signal TEXT NOT NULL,
	exit_signal TEXT NOT NULL,
	open INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id);
CREATE INDEX IF NOT EXISTS idx_trades_exit_time ON trades(exit_time);
`
