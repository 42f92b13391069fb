// econ/engine.go
//
// Pure price <-> pip <-> USD conversions for leveraged positions. Nothing in
// this package holds state or touches I/O; every function is safe to call
// from any number of goroutines.
package econ

import (
	"errors"
	"math"
)

var (
	// ErrInvalidNumeric flags a non-finite input or a zero pip size.
	ErrInvalidNumeric = errors.New("invalid numeric input")

	// ErrNotSolvable means no price satisfies the requested USD target,
	// which happens when the pip value or the lot size is zero.
	ErrNotSolvable = errors.New("target not solvable")
)

// PipsBetween returns the signed pip distance from entry to price. Positive
// means the move is favorable for the given direction.
func PipsBetween(entry, price, pipSize float64, dir Direction) (float64, error) {
	if !isFinite(entry) || !isFinite(price) || !isFinite(pipSize) || pipSize == 0 {
		return 0, ErrInvalidNumeric
	}
	if dir == Long {
		return (price - entry) / pipSize, nil
	}
	return (entry - price) / pipSize, nil
}

// PipValueUSD returns the USD value of one pip of movement for one lot.
// When the quote currency is not USD the base value is divided by
// quoteToUSDRate, except when the rate is zero: then the undivided value is
// returned. That zero-rate fallback mirrors long-standing tracker behavior
// and avoids a division by zero rather than failing.
func PipValueUSD(pipSize, contractSize float64, quoteIsUSD bool, quoteToUSDRate float64) float64 {
	base := pipSize * contractSize
	if quoteIsUSD || quoteToUSDRate == 0 {
		return base
	}
	return base / quoteToUSDRate
}

// USDFromPips converts a pip distance into USD for the given position size.
// NaN and Inf pass straight through; validate upstream.
func USDFromPips(pips, pipValuePerLot, lots float64) float64 {
	return pips * pipValuePerLot * lots
}

// PriceFromUSDTarget solves the inverse problem: the price at which the
// position's P/L equals usdTarget. Returns ErrNotSolvable when the pip value
// or lots is zero, since then no price moves the needle.
func PriceFromUSDTarget(entry float64, dir Direction, usdTarget, pipSize, contractSize float64, quoteIsUSD bool, quoteRate, lots float64) (float64, error) {
	pipValue := PipValueUSD(pipSize, contractSize, quoteIsUSD, quoteRate)
	if pipValue == 0 || lots == 0 {
		return 0, ErrNotSolvable
	}
	pipsNeeded := usdTarget / (pipValue * lots)
	priceDiff := pipsNeeded * pipSize
	if dir == Long {
		return entry + priceDiff, nil
	}
	return entry - priceDiff, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
