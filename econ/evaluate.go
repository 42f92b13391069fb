package econ

import (
	"fmt"

	"github.com/rustyeddy/tradetrack/market"
)

// TradeInputs are the user-supplied parameters of one position. Optional
// prices are nil when not entered; ContractSize overrides the catalog value
// when set; QuoteRate is required for instruments not quoted in USD.
type TradeInputs struct {
	Instrument   string
	Direction    Direction
	Entry        float64
	Stop         *float64
	Target       *float64
	Exit         *float64
	Lots         float64
	ContractSize *float64
	QuoteRate    *float64
	Notes        string
}

// Evaluation is the full set of derived figures for one position, plus a
// snapshot of every value that went into computing them. Derived fields stay
// nil when the corresponding input price was absent.
type Evaluation struct {
	Instrument   string
	Direction    Direction
	Entry        float64
	Stop         *float64
	Target       *float64
	Exit         *float64
	Lots         float64
	ContractSize float64 // value actually used
	PipSize      float64 // value actually used
	QuoteRate    float64 // value actually used (1 for USD-quoted)
	PipValue     float64 // USD per pip per lot

	PipsToStop   *float64
	USDToStop    *float64
	PipsToTarget *float64
	USDToTarget  *float64
	RealizedPips *float64
	RealizedUSD  *float64
}

// Evaluate computes every derived figure the inputs allow. It is the single
// calculation entry point: the preview path and the save path both go
// through here, so the numbers a trader sees are the numbers that get
// stored.
func Evaluate(in TradeInputs, spec market.InstrumentSpec) (Evaluation, error) {
	if !isFinite(in.Entry) {
		return Evaluation{}, fmt.Errorf("entry price: %w", ErrInvalidNumeric)
	}
	if !isFinite(in.Lots) || in.Lots <= 0 {
		return Evaluation{}, fmt.Errorf("lots must be a positive number: %w", ErrInvalidNumeric)
	}

	contract := spec.ContractSize
	if in.ContractSize != nil {
		if !isFinite(*in.ContractSize) || *in.ContractSize <= 0 {
			return Evaluation{}, fmt.Errorf("contract size override: %w", ErrInvalidNumeric)
		}
		contract = *in.ContractSize
	}

	quoteRate := 1.0
	if !spec.QuoteIsUSD {
		if in.QuoteRate == nil {
			return Evaluation{}, fmt.Errorf("%s is not USD-quoted, quote rate required: %w", spec.Symbol, ErrInvalidNumeric)
		}
		if !isFinite(*in.QuoteRate) {
			return Evaluation{}, fmt.Errorf("quote rate: %w", ErrInvalidNumeric)
		}
		quoteRate = *in.QuoteRate
	}

	ev := Evaluation{
		Instrument:   spec.Symbol,
		Direction:    in.Direction,
		Entry:        in.Entry,
		Stop:         in.Stop,
		Target:       in.Target,
		Exit:         in.Exit,
		Lots:         in.Lots,
		ContractSize: contract,
		PipSize:      spec.PipSize,
		QuoteRate:    quoteRate,
		PipValue:     PipValueUSD(spec.PipSize, contract, spec.QuoteIsUSD, quoteRate),
	}

	var err error
	if ev.PipsToStop, ev.USDToStop, err = ev.derive(in.Stop, "stop"); err != nil {
		return Evaluation{}, err
	}
	if ev.PipsToTarget, ev.USDToTarget, err = ev.derive(in.Target, "target"); err != nil {
		return Evaluation{}, err
	}
	if ev.RealizedPips, ev.RealizedUSD, err = ev.derive(in.Exit, "exit"); err != nil {
		return Evaluation{}, err
	}
	return ev, nil
}

// derive computes the pip distance and USD amount for one optional price.
// A nil price yields nil results, never a synthetic zero.
func (ev *Evaluation) derive(price *float64, field string) (*float64, *float64, error) {
	if price == nil {
		return nil, nil, nil
	}
	pips, err := PipsBetween(ev.Entry, *price, ev.PipSize, ev.Direction)
	if err != nil {
		return nil, nil, fmt.Errorf("%s price: %w", field, err)
	}
	usd := USDFromPips(pips, ev.PipValue, ev.Lots)
	return &pips, &usd, nil
}
