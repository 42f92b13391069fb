package econ

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipsBetweenSignConvention(t *testing.T) {
	t.Parallel()

	// Long and against: price below entry is negative.
	pips, err := PipsBetween(1900.00, 1895.00, 0.01, Long)
	require.NoError(t, err)
	assert.InDelta(t, -500.0, pips, 1e-9)

	// Short and in favor: price below entry is positive.
	pips, err = PipsBetween(1900.00, 1895.00, 0.01, Short)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, pips, 1e-9)
}

func TestPipsBetweenAntisymmetry(t *testing.T) {
	t.Parallel()

	pairs := []struct{ entry, price, pip float64 }{
		{1900.00, 1895.00, 0.01},
		{150.00, 150.50, 0.01},
		{0.6500, 0.6488, 0.0001},
		{64000, 63850, 1},
		{100, 100, 0.5},
	}
	for _, p := range pairs {
		long, err := PipsBetween(p.entry, p.price, p.pip, Long)
		require.NoError(t, err)
		short, err := PipsBetween(p.entry, p.price, p.pip, Short)
		require.NoError(t, err)
		assert.Equal(t, long, -short, "entry=%v price=%v", p.entry, p.price)
	}
}

func TestPipsBetweenInvalidInputs(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name                string
		entry, price, pip   float64
	}{
		{"nan entry", nan, 1.0, 0.01},
		{"nan price", 1.0, nan, 0.01},
		{"inf price", 1.0, inf, 0.01},
		{"zero pip", 1.0, 2.0, 0},
		{"nan pip", 1.0, 2.0, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PipsBetween(tt.entry, tt.price, tt.pip, Long)
			assert.True(t, errors.Is(err, ErrInvalidNumeric))
		})
	}
}

func TestPipValueUSD(t *testing.T) {
	t.Parallel()

	// USD-quoted: pip * contract, rate ignored.
	assert.Equal(t, 1.0, PipValueUSD(0.01, 100, true, 150))

	// Non-USD quote: divided by the rate.
	assert.InDelta(t, 6.666666667, PipValueUSD(0.01, 100000, false, 150), 1e-6)
}

func TestPipValueUSDZeroRateFallback(t *testing.T) {
	t.Parallel()

	// Documented degenerate fallback: a zero rate returns the undivided
	// base value, exactly.
	assert.Equal(t, 0.01*100000, PipValueUSD(0.01, 100000, false, 0))
}

func TestUSDFromPipsPropagatesNonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -500.0, USDFromPips(-500, 1.0, 1.0))
	assert.True(t, math.IsNaN(USDFromPips(math.NaN(), 1.0, 1.0)))
	assert.True(t, math.IsInf(USDFromPips(math.Inf(1), 1.0, 1.0), 1))
}

func TestPriceFromUSDTarget(t *testing.T) {
	t.Parallel()

	// XAUUSD long, $250 on 2 lots: pip value 1, 125 pips, +1.25.
	price, err := PriceFromUSDTarget(1900.00, Long, 250, 0.01, 100, true, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1901.25, price, 1e-9)

	// Same target short moves the other way.
	price, err = PriceFromUSDTarget(1900.00, Short, 250, 0.01, 100, true, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1898.75, price, 1e-9)
}

func TestPriceFromUSDTargetNotSolvable(t *testing.T) {
	t.Parallel()

	_, err := PriceFromUSDTarget(1900, Long, 100, 0.01, 100, true, 1, 0)
	assert.True(t, errors.Is(err, ErrNotSolvable), "zero lots")

	_, err = PriceFromUSDTarget(1900, Long, 100, 0, 100, true, 1, 1)
	assert.True(t, errors.Is(err, ErrNotSolvable), "zero pip value")
}

// The inverse solve must be a left inverse of the pips->USD chain.
func TestPriceFromUSDTargetRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		entry      float64
		dir        Direction
		usd        float64
		pip        float64
		contract   float64
		quoteUSD   bool
		rate       float64
		lots       float64
	}{
		{"gold long", 1900.00, Long, 250, 0.01, 100, true, 1, 2},
		{"gold short loss", 1900.00, Short, -125.5, 0.01, 100, true, 1, 0.5},
		{"usdjpy long", 150.00, Long, 333.33, 0.01, 100000, false, 150, 1},
		{"audusd short", 0.6500, Short, 42, 0.0001, 100000, true, 1, 3},
		{"btc tiny", 64000, Long, 10, 1, 1, true, 1, 0.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := PriceFromUSDTarget(tc.entry, tc.dir, tc.usd, tc.pip, tc.contract, tc.quoteUSD, tc.rate, tc.lots)
			require.NoError(t, err)

			pips, err := PipsBetween(tc.entry, price, tc.pip, tc.dir)
			require.NoError(t, err)
			pipValue := PipValueUSD(tc.pip, tc.contract, tc.quoteUSD, tc.rate)
			got := USDFromPips(pips, pipValue, tc.lots)
			assert.InDelta(t, tc.usd, got, 1e-6)
		})
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	d, err := ParseDirection("Long")
	require.NoError(t, err)
	assert.Equal(t, Long, d)

	d, err = ParseDirection("short")
	require.NoError(t, err)
	assert.Equal(t, Short, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
