// journal/sqlite.go
package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// ledger is the durable layer the Store writes through. Split out so tests
// can substitute a failing implementation.
type ledger interface {
	insert(rec TradeRecord) (int64, error)
	selectRecords(limit uint, filters map[string]string) ([]TradeRecord, error)
	deleteByID(id int64) (bool, error)
	close() error
}

// filterableColumns are the only fields Query accepts as filters. Keys come
// from callers, so they are never interpolated without this allowlist.
var filterableColumns = map[string]bool{
	"instrument": true,
	"direction":  true,
}

const tradeColumns = `id, timestamp, instrument, direction, entry, stop, target, exit,
	lots, contract_size, pip_size, quote_to_usd,
	pips_to_sl, usd_to_sl, pips_to_tp, usd_to_tp, realized_pips, realized_usd, notes`

type sqliteLedger struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// tradeRow is the scan target; the timestamp travels as text in the fixed
// UTC layout.
type tradeRow struct {
	ID           int64    `db:"id"`
	Timestamp    string   `db:"timestamp"`
	Instrument   string   `db:"instrument"`
	Direction    string   `db:"direction"`
	Entry        float64  `db:"entry"`
	Stop         *float64 `db:"stop"`
	Target       *float64 `db:"target"`
	Exit         *float64 `db:"exit"`
	Lots         float64  `db:"lots"`
	ContractSize float64  `db:"contract_size"`
	PipSize      float64  `db:"pip_size"`
	QuoteToUSD   float64  `db:"quote_to_usd"`
	PipsToSL     *float64 `db:"pips_to_sl"`
	USDToSL      *float64 `db:"usd_to_sl"`
	PipsToTP     *float64 `db:"pips_to_tp"`
	USDToTP      *float64 `db:"usd_to_tp"`
	RealizedPips *float64 `db:"realized_pips"`
	RealizedUSD  *float64 `db:"realized_usd"`
	Notes        string   `db:"notes"`
}

func openSQLite(path string, log zerolog.Logger) (*sqliteLedger, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	return &sqliteLedger{db: db, log: log}, nil
}

func (l *sqliteLedger) insert(rec TradeRecord) (int64, error) {
	res, err := l.db.Exec(`
		INSERT INTO trades
		(timestamp, instrument, direction, entry, stop, target, exit,
		 lots, contract_size, pip_size, quote_to_usd,
		 pips_to_sl, usd_to_sl, pips_to_tp, usd_to_tp, realized_pips, realized_usd, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.UTC().Format(timeLayout), rec.Instrument, rec.Direction,
		rec.Entry, rec.Stop, rec.Target, rec.Exit,
		rec.Lots, rec.ContractSize, rec.PipSize, rec.QuoteToUSD,
		rec.PipsToSL, rec.USDToSL, rec.PipsToTP, rec.USDToTP,
		rec.RealizedPips, rec.RealizedUSD, rec.Notes,
	)
	if err != nil {
		return 0, &PersistenceError{Op: "insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &PersistenceError{Op: "insert", Err: err}
	}
	l.log.Debug().Int64("id", id).Str("instrument", rec.Instrument).Msg("trade persisted")
	return id, nil
}

func (l *sqliteLedger) selectRecords(limit uint, filters map[string]string) ([]TradeRecord, error) {
	query := "SELECT " + tradeColumns + " FROM trades"
	var args []any

	if len(filters) > 0 {
		keys := make([]string, 0, len(filters))
		for k := range filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		where := ""
		for i, k := range keys {
			if !filterableColumns[k] {
				return nil, fmt.Errorf("cannot filter on %q", k)
			}
			if i > 0 {
				where += " AND "
			}
			where += k + " = ?"
			args = append(args, filters[k])
		}
		query += " WHERE " + where
	}

	// Same-instant inserts fall back to id order.
	query += " ORDER BY timestamp DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []tradeRow
	if err := l.db.Select(&rows, query, args...); err != nil {
		return nil, &PersistenceError{Op: "select", Err: err}
	}

	out := make([]TradeRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, &PersistenceError{Op: "select", Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (l *sqliteLedger) deleteByID(id int64) (bool, error) {
	res, err := l.db.Exec("DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return false, &PersistenceError{Op: "delete", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &PersistenceError{Op: "delete", Err: err}
	}
	return n > 0, nil
}

func (l *sqliteLedger) close() error {
	if err := l.db.Close(); err != nil {
		return &PersistenceError{Op: "close", Err: err}
	}
	return nil
}

func (r tradeRow) record() (TradeRecord, error) {
	ts, err := time.Parse(timeLayout, r.Timestamp)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("bad timestamp %q: %w", r.Timestamp, err)
	}
	return TradeRecord{
		ID:           r.ID,
		Timestamp:    ts,
		Instrument:   r.Instrument,
		Direction:    r.Direction,
		Entry:        r.Entry,
		Stop:         r.Stop,
		Target:       r.Target,
		Exit:         r.Exit,
		Lots:         r.Lots,
		ContractSize: r.ContractSize,
		PipSize:      r.PipSize,
		QuoteToUSD:   r.QuoteToUSD,
		PipsToSL:     r.PipsToSL,
		USDToSL:      r.USDToSL,
		PipsToTP:     r.PipsToTP,
		USDToTP:      r.USDToTP,
		RealizedPips: r.RealizedPips,
		RealizedUSD:  r.RealizedUSD,
		Notes:        r.Notes,
	}, nil
}
