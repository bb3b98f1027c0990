package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	date TEXT NOT NULL,
	gross REAL NOT NULL,
	commission REAL NOT NULL,
	exchange_fee REAL NOT NULL,
	quantity INTEGER NOT NULL,
	net REAL NOT NULL,
	duration TEXT NOT NULL,
	notes TEXT NOT NULL,
	images BLOB,
	source TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);

CREATE TABLE IF NOT EXISTS goals (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	monthly_pnl_target REAL NOT NULL,
	max_daily_loss_limit REAL NOT NULL,
	max_trades_per_day INTEGER NOT NULL,
	min_win_rate_pct REAL NOT NULL
);
`
