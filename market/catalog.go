// market/catalog.go
package market

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownInstrument is returned by Lookup for symbols the catalog does
// not carry.
var ErrUnknownInstrument = errors.New("unknown instrument")

// InstrumentSpec describes the pricing convention of a single instrument.
// PipSize is the price increment treated as one pip, ContractSize the units
// of the underlying per one standard lot. When QuoteIsUSD is false a
// quote-to-USD rate must be supplied at calculation time.
type InstrumentSpec struct {
	Symbol       string
	PipSize      float64
	ContractSize float64
	QuoteIsUSD   bool
	Description  string
}

// Catalog is a read-only registry of instrument specs. Build one with
// NewCatalog or DefaultCatalog; it must not be modified after that.
type Catalog struct {
	specs map[string]InstrumentSpec
}

// NewCatalog builds a catalog from the given specs. Every spec must have a
// symbol, a positive pip size and a positive contract size.
func NewCatalog(specs ...InstrumentSpec) (*Catalog, error) {
	m := make(map[string]InstrumentSpec, len(specs))
	for _, s := range specs {
		if s.Symbol == "" {
			return nil, fmt.Errorf("instrument spec without symbol")
		}
		if s.PipSize <= 0 {
			return nil, fmt.Errorf("instrument %s: pip size must be > 0, got %v", s.Symbol, s.PipSize)
		}
		if s.ContractSize <= 0 {
			return nil, fmt.Errorf("instrument %s: contract size must be > 0, got %v", s.Symbol, s.ContractSize)
		}
		if _, dup := m[s.Symbol]; dup {
			return nil, fmt.Errorf("instrument %s: duplicate symbol", s.Symbol)
		}
		m[s.Symbol] = s
	}
	return &Catalog{specs: m}, nil
}

// Lookup returns the spec for symbol, or ErrUnknownInstrument.
func (c *Catalog) Lookup(symbol string) (InstrumentSpec, error) {
	s, ok := c.specs[symbol]
	if !ok {
		return InstrumentSpec{}, fmt.Errorf("%w: %s", ErrUnknownInstrument, symbol)
	}
	return s, nil
}

// Symbols returns all registered symbols in lexical order.
func (c *Catalog) Symbols() []string {
	out := make([]string, 0, len(c.specs))
	for sym := range c.specs {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of registered instruments.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// DefaultCatalog returns the catalog shipped with the tracker: the metals,
// crypto, index and FX pairs it has always supported. Adding instruments is
// a deployment-time change, not a runtime one.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		InstrumentSpec{Symbol: "XAUUSD", PipSize: 0.01, ContractSize: 100, QuoteIsUSD: true, Description: "Gold (pip=0.01)"},
		InstrumentSpec{Symbol: "BTCUSD", PipSize: 1.0, ContractSize: 1, QuoteIsUSD: true, Description: "Bitcoin (pip=1)"},
		InstrumentSpec{Symbol: "US30", PipSize: 1.0, ContractSize: 1, QuoteIsUSD: true, Description: "US30 index (point=1)"},
		InstrumentSpec{Symbol: "NASDAQ100", PipSize: 1.0, ContractSize: 1, QuoteIsUSD: true, Description: "NASDAQ100 (point=1)"},
		InstrumentSpec{Symbol: "USDJPY", PipSize: 0.01, ContractSize: 100000, QuoteIsUSD: false, Description: "USD/JPY (pip=0.01, quote JPY)"},
		InstrumentSpec{Symbol: "GBPJPY", PipSize: 0.01, ContractSize: 100000, QuoteIsUSD: false, Description: "GBP/JPY (pip=0.01, quote JPY)"},
		InstrumentSpec{Symbol: "AUDUSD", PipSize: 0.0001, ContractSize: 100000, QuoteIsUSD: true, Description: "AUD/USD (pip=0.0001)"},
	)
	if err != nil {
		// The default table is fixed at build time; a bad entry is a bug.
		panic(err)
	}
	return c
}
