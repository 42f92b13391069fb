// journal/store.go
package journal

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/tradetrack/econ"
)

// DefaultCacheTTL is the freshness window for repeated identical queries.
const DefaultCacheTTL = 5 * time.Minute

// Store is the trade ledger: a SQLite-backed collection of TradeRecord with
// a bounded-freshness read cache. Any number of goroutines may call Query
// concurrently; Add and Delete serialize with each other and with cache
// invalidation.
type Store struct {
	// mu is the single boundary around "mutate ledger + flush cache".
	// Query re-acquires it when falling through to the durable layer so a
	// pre-write read can never be cached after the write flushed.
	mu     sync.Mutex
	ledger ledger
	cache  *queryCache
	log    zerolog.Logger
	now    func() time.Time
}

// Option adjusts a Store at Open time.
type Option func(*Store)

// WithCacheTTL overrides the query-cache freshness window.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Store) { s.cache = newQueryCache(d, s.now) }
}

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		log: zerolog.Nop(),
		now: time.Now,
	}
	s.cache = newQueryCache(DefaultCacheTTL, s.now)
	for _, opt := range opts {
		opt(s)
	}

	l, err := openSQLite(path, s.log)
	if err != nil {
		return nil, err
	}
	s.ledger = l
	return s, nil
}

// Add freezes the evaluation into a TradeRecord, persists it and returns
// the stored record with its assigned id. On failure nothing is written and
// the cache is left untouched.
func (s *Store) Add(ev econ.Evaluation, meta Meta) (TradeRecord, error) {
	rec := recordFromEvaluation(ev, meta, s.now)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.ledger.insert(rec)
	if err != nil {
		return TradeRecord{}, err
	}
	rec.ID = id
	s.cache.flush()

	s.log.Info().
		Int64("id", id).
		Str("instrument", rec.Instrument).
		Str("direction", rec.Direction).
		Float64("lots", rec.Lots).
		Msg("trade added")
	return rec, nil
}

// Query returns records matching every filter equality, newest first,
// truncated to limit (0 means no limit). Repeated identical queries within
// the freshness window are served from cache without touching SQLite.
func (s *Store) Query(limit uint, filters map[string]string) ([]TradeRecord, error) {
	key := cacheKey(limit, filters)
	if recs, ok := s.cache.get(key); ok {
		return recs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.ledger.selectRecords(limit, filters)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, recs)
	return recs, nil
}

// Delete removes the record with the given id and reports whether anything
// was removed. Deleting an unknown id is not an error.
func (s *Store) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.ledger.deleteByID(id)
	if err != nil {
		return false, err
	}
	s.cache.flush()
	if removed {
		s.log.Info().Int64("id", id).Msg("trade deleted")
	}
	return removed, nil
}

// CacheStats reports cache hits and misses since Open.
func (s *Store) CacheStats() (hits, misses uint64) {
	return s.cache.stats()
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.ledger.close()
}

func recordFromEvaluation(ev econ.Evaluation, meta Meta, now func() time.Time) TradeRecord {
	ts := meta.RecordedAt
	if ts.IsZero() {
		ts = now()
	}
	return TradeRecord{
		Timestamp:    ts.UTC(),
		Instrument:   ev.Instrument,
		Direction:    ev.Direction.String(),
		Entry:        ev.Entry,
		Stop:         ev.Stop,
		Target:       ev.Target,
		Exit:         ev.Exit,
		Lots:         ev.Lots,
		ContractSize: ev.ContractSize,
		PipSize:      ev.PipSize,
		QuoteToUSD:   ev.QuoteRate,
		PipsToSL:     round4p(ev.PipsToStop),
		USDToSL:      round4p(ev.USDToStop),
		PipsToTP:     round4p(ev.PipsToTarget),
		USDToTP:      round4p(ev.USDToTarget),
		RealizedPips: round4p(ev.RealizedPips),
		RealizedUSD:  round4p(ev.RealizedUSD),
		Notes:        meta.Notes,
	}
}

// Derived figures are stored at a canonical 4 decimal places so saved
// values stay reproducible; the engine itself never rounds.
func round4p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*1e4) / 1e4
	return &r
}
