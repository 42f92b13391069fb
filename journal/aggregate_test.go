package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedTrade(instrument string, usd float64) TradeRecord {
	return TradeRecord{Instrument: instrument, RealizedUSD: &usd}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
	assert.Zero(t, s.TotalRealizedUSD)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgWin)
	assert.Zero(t, s.AvgLoss)
}

func TestSummarizeIgnoresOpenTrades(t *testing.T) {
	t.Parallel()

	recs := []TradeRecord{
		{Instrument: "XAUUSD"}, // open, no realized P/L
		closedTrade("XAUUSD", 100),
	}
	s := Summarize(recs)
	assert.Equal(t, 1, s.Closed)
	assert.Equal(t, 1.0, s.WinRate)
	assert.Equal(t, 100.0, s.TotalRealizedUSD)
}

func TestSummarizeMixed(t *testing.T) {
	t.Parallel()

	recs := []TradeRecord{
		closedTrade("XAUUSD", 300),
		closedTrade("XAUUSD", 100),
		closedTrade("USDJPY", -50),
		closedTrade("BTCUSD", -150),
		closedTrade("US30", 0), // break-even: closed, neither win nor loss
	}
	s := Summarize(recs)

	assert.Equal(t, 5, s.Closed)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.InDelta(t, 200.0, s.TotalRealizedUSD, 1e-9)
	assert.InDelta(t, 0.4, s.WinRate, 1e-9)
	assert.InDelta(t, 200.0, s.AvgWin, 1e-9)
	assert.InDelta(t, -100.0, s.AvgLoss, 1e-9)
}

func TestSummarizeAllLosses(t *testing.T) {
	t.Parallel()

	s := Summarize([]TradeRecord{closedTrade("XAUUSD", -10), closedTrade("XAUUSD", -30)})
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgWin, "empty win subset yields 0, not NaN")
	assert.InDelta(t, -20.0, s.AvgLoss, 1e-9)
}

func TestByInstrument(t *testing.T) {
	t.Parallel()

	recs := []TradeRecord{
		closedTrade("XAUUSD", 100),
		closedTrade("XAUUSD", -40),
		{Instrument: "USDJPY"}, // open
		closedTrade("BTCUSD", 25),
	}
	slices := ByInstrument(recs)
	require.Len(t, slices, 3)

	assert.Equal(t, "XAUUSD", slices[0].Instrument)
	assert.Equal(t, 2, slices[0].Trades)
	assert.InDelta(t, 0.5, slices[0].Share, 1e-9)
	assert.InDelta(t, 60.0, slices[0].RealizedUSD, 1e-9)

	// Equal counts order by symbol.
	assert.Equal(t, "BTCUSD", slices[1].Instrument)
	assert.Equal(t, "USDJPY", slices[2].Instrument)
	assert.Zero(t, slices[2].RealizedUSD)
}

func TestByInstrumentEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, ByInstrument(nil))
}

func TestProfitSeriesChronological(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	newest := closedTrade("XAUUSD", 70)
	newest.ID = 3
	newest.Timestamp = base.Add(2 * time.Hour)
	oldest := closedTrade("XAUUSD", -20)
	oldest.ID = 1
	oldest.Timestamp = base
	open := TradeRecord{ID: 2, Instrument: "USDJPY", Timestamp: base.Add(time.Hour)}

	// Query order is newest first; the series flips it.
	series := ProfitSeries([]TradeRecord{newest, open, oldest})
	require.Len(t, series, 3)
	assert.Equal(t, int64(1), series[0].ID)
	assert.Equal(t, -20.0, series[0].RealizedUSD)
	assert.Equal(t, int64(2), series[1].ID)
	assert.Zero(t, series[1].RealizedUSD)
	assert.Equal(t, int64(3), series[2].ID)
	assert.Equal(t, 70.0, series[2].RealizedUSD)
}
