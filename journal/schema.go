// journal/schema.go
package journal

// Schema is the durable layout of the ledger. Column order matches the
// historical trade-tracker files, so existing databases keep working.
// Optional numerics are NULL when absent, never zero.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	instrument TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry REAL NOT NULL,
	stop REAL,
	target REAL,
	exit REAL,
	lots REAL NOT NULL,
	contract_size REAL NOT NULL,
	pip_size REAL NOT NULL,
	quote_to_usd REAL NOT NULL,
	pips_to_sl REAL,
	usd_to_sl REAL,
	pips_to_tp REAL,
	usd_to_tp REAL,
	realized_pips REAL,
	realized_usd REAL,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_timestamp ON trades(timestamp);
CREATE INDEX IF NOT EXISTS idx_trades_instrument ON trades(instrument);
`

// timeLayout is a fixed-width RFC 3339 form (always UTC, always nine
// fractional digits) so that lexical order on the timestamp column is
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"
