package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookup(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()

	gold, err := c.Lookup("XAUUSD")
	require.NoError(t, err)
	assert.Equal(t, 0.01, gold.PipSize)
	assert.Equal(t, 100.0, gold.ContractSize)
	assert.True(t, gold.QuoteIsUSD)

	jpy, err := c.Lookup("USDJPY")
	require.NoError(t, err)
	assert.Equal(t, 100000.0, jpy.ContractSize)
	assert.False(t, jpy.QuoteIsUSD)
}

func TestLookupUnknownInstrument(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	_, err := c.Lookup("EURUSD")
	assert.True(t, errors.Is(err, ErrUnknownInstrument))
	assert.Contains(t, err.Error(), "EURUSD")
}

func TestDefaultCatalogInvariants(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.NotZero(t, c.Len())
	for _, sym := range c.Symbols() {
		spec, err := c.Lookup(sym)
		require.NoError(t, err)
		assert.Greater(t, spec.PipSize, 0.0, sym)
		assert.Greater(t, spec.ContractSize, 0.0, sym)
		assert.NotEmpty(t, spec.Description, sym)
	}
}

func TestNewCatalogRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec InstrumentSpec
	}{
		{"zero pip", InstrumentSpec{Symbol: "X", PipSize: 0, ContractSize: 1}},
		{"negative pip", InstrumentSpec{Symbol: "X", PipSize: -0.01, ContractSize: 1}},
		{"zero contract", InstrumentSpec{Symbol: "X", PipSize: 0.01, ContractSize: 0}},
		{"empty symbol", InstrumentSpec{PipSize: 0.01, ContractSize: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog(
		InstrumentSpec{Symbol: "X", PipSize: 0.01, ContractSize: 1},
		InstrumentSpec{Symbol: "X", PipSize: 0.1, ContractSize: 10},
	)
	assert.Error(t, err)
}

func TestSymbolsSorted(t *testing.T) {
	t.Parallel()

	syms := DefaultCatalog().Symbols()
	assert.Equal(t, []string{"AUDUSD", "BTCUSD", "GBPJPY", "NASDAQ100", "US30", "USDJPY", "XAUUSD"}, syms)
}
