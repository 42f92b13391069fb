// journal/record.go
package journal

import "time"

// TradeRecord is one persisted trade: the inputs that were actually used
// for calculation plus the derived figures frozen at save time. Records are
// immutable once written; correction is delete and re-add.
type TradeRecord struct {
	ID         int64
	Timestamp  time.Time // UTC
	Instrument string
	Direction  string // "Long" or "Short"

	Entry  float64
	Stop   *float64
	Target *float64
	Exit   *float64

	Lots         float64
	ContractSize float64
	PipSize      float64
	QuoteToUSD   float64

	// Derived at save time, nil when the corresponding price was absent.
	PipsToSL     *float64
	USDToSL      *float64
	PipsToTP     *float64
	USDToTP      *float64
	RealizedPips *float64
	RealizedUSD  *float64

	Notes string
}

// Meta carries the non-calculated metadata attached to a record at save
// time. A zero RecordedAt means "now".
type Meta struct {
	RecordedAt time.Time
	Notes      string
}
