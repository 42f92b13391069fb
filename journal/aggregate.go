// journal/aggregate.go
package journal

import (
	"sort"
	"time"
)

// Summary holds the aggregate dashboard metrics over a set of records.
// Records without a realized P/L (still-open trades) count toward nothing.
type Summary struct {
	TotalRealizedUSD float64
	WinRate          float64 // wins / closed, 0 when nothing closed
	AvgWin           float64 // mean of positive realized USD, 0 if none
	AvgLoss          float64 // mean of negative realized USD (<= 0), 0 if none
	Closed           int
	Wins             int
	Losses           int
}

// Summarize folds a record sequence into its Summary. Pure; the sequence
// need not be the whole ledger. Empty or all-open input yields all zeros,
// never NaN.
func Summarize(records []TradeRecord) Summary {
	var s Summary
	var winSum, lossSum float64

	for _, rec := range records {
		if rec.RealizedUSD == nil {
			continue
		}
		usd := *rec.RealizedUSD
		s.Closed++
		s.TotalRealizedUSD += usd
		switch {
		case usd > 0:
			s.Wins++
			winSum += usd
		case usd < 0:
			s.Losses++
			lossSum += usd
		}
	}

	if s.Closed > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Closed)
	}
	if s.Wins > 0 {
		s.AvgWin = winSum / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = lossSum / float64(s.Losses)
	}
	return s
}

// InstrumentSlice is one instrument's share of a record set: how many
// trades it contributed and what they realized.
type InstrumentSlice struct {
	Instrument  string
	Trades      int
	Share       float64 // fraction of all trades in the set
	RealizedUSD float64 // sum over closed trades, 0 if none closed
}

// ByInstrument groups a record set per instrument, ordered by trade count
// descending then symbol. This feeds the distribution view.
func ByInstrument(records []TradeRecord) []InstrumentSlice {
	if len(records) == 0 {
		return nil
	}

	bysym := make(map[string]*InstrumentSlice)
	for _, rec := range records {
		sl, ok := bysym[rec.Instrument]
		if !ok {
			sl = &InstrumentSlice{Instrument: rec.Instrument}
			bysym[rec.Instrument] = sl
		}
		sl.Trades++
		if rec.RealizedUSD != nil {
			sl.RealizedUSD += *rec.RealizedUSD
		}
	}

	out := make([]InstrumentSlice, 0, len(bysym))
	for _, sl := range bysym {
		sl.Share = float64(sl.Trades) / float64(len(records))
		out = append(out, *sl)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Trades != out[j].Trades {
			return out[i].Trades > out[j].Trades
		}
		return out[i].Instrument < out[j].Instrument
	})
	return out
}

// ProfitPoint is one trade's realized P/L in chronological position.
type ProfitPoint struct {
	ID          int64
	Timestamp   time.Time
	RealizedUSD float64 // 0 for still-open trades
}

// ProfitSeries orders the records chronologically and extracts realized USD
// per trade. This feeds the per-trade P/L bar view.
func ProfitSeries(records []TradeRecord) []ProfitPoint {
	sorted := make([]TradeRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})

	out := make([]ProfitPoint, len(sorted))
	for i, rec := range sorted {
		p := ProfitPoint{ID: rec.ID, Timestamp: rec.Timestamp}
		if rec.RealizedUSD != nil {
			p.RealizedUSD = *rec.RealizedUSD
		}
		out[i] = p
	}
	return out
}
