package journal

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	version INTEGER NOT NULL,
	start_date TEXT NOT NULL,
	old_hourly_salary REAL NOT NULL,
	starting_balance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	day_index INTEGER PRIMARY KEY,
	profit REAL NOT NULL,
	hours REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	day_index INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	token TEXT NOT NULL,
	trade_type TEXT NOT NULL,
	max_price REAL NOT NULL,
	min_price REAL NOT NULL,
	reason TEXT NOT NULL,
	emotions TEXT NOT NULL,
	lessons TEXT NOT NULL,
	total_in REAL NOT NULL,
	total_out REAL NOT NULL,
	avg_entry_price REAL NOT NULL,
	actual_profit REAL NOT NULL,
	actual_profit_pct REAL NOT NULL,
	potential_profit REAL NOT NULL,
	potential_profit_pct REAL NOT NULL,
	missed_profit REAL NOT NULL,
	max_drawdown_pct REAL NOT NULL,
	was_ever_profitable INTEGER NOT NULL,
	saved_by_early_exit INTEGER NOT NULL,
	roundtripped INTEGER NOT NULL,
	hold_time TEXT NOT NULL,
	hold_time_mins INTEGER NOT NULL,
	is_dca INTEGER NOT NULL,
	is_partial_exit INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_day ON trades(day_index, seq);

CREATE TABLE IF NOT EXISTS legs (
	trade_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	leg_index INTEGER NOT NULL,
	price REAL NOT NULL,
	size REAL NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_legs_trade ON legs(trade_id, kind, leg_index);

CREATE TABLE IF NOT EXISTS withdrawals (
	withdrawal_id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	amount REAL NOT NULL,
	date TEXT NOT NULL
);
`
