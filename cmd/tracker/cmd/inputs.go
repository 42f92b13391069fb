package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/econ"
	"github.com/rustyeddy/tradetrack/market"
)

// tradeFlags collects the position parameters shared by calc and add.
// Optional prices are only forwarded when the flag was actually set, so an
// untouched flag never turns into a synthetic zero price.
type tradeFlags struct {
	instrument string
	direction  string
	entry      float64
	stop       float64
	target     float64
	exit       float64
	lots       float64
	contract   float64
	quoteRate  float64
	notes      string
}

func addTradeFlags(cmd *cobra.Command, tf *tradeFlags) {
	fl := cmd.Flags()
	fl.StringVar(&tf.instrument, "instrument", "XAUUSD", "instrument symbol")
	fl.StringVar(&tf.direction, "direction", "Long", "Long or Short")
	fl.Float64Var(&tf.entry, "entry", 0, "entry price (required)")
	fl.Float64Var(&tf.stop, "stop", 0, "stop-loss price")
	fl.Float64Var(&tf.target, "target", 0, "take-profit price")
	fl.Float64Var(&tf.exit, "exit", 0, "realized exit price")
	fl.Float64Var(&tf.lots, "lots", 1, "position size in lots")
	fl.Float64Var(&tf.contract, "contract", 0, "contract size per lot (defaults to the instrument's)")
	fl.Float64Var(&tf.quoteRate, "quote-rate", 0, "quote-to-USD rate (required for non-USD quotes, e.g. USDJPY=150)")
	fl.StringVar(&tf.notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("entry")
}

func (tf *tradeFlags) inputs(cmd *cobra.Command) (econ.TradeInputs, market.InstrumentSpec, error) {
	spec, err := catalog.Lookup(tf.instrument)
	if err != nil {
		return econ.TradeInputs{}, market.InstrumentSpec{}, err
	}
	dir, err := econ.ParseDirection(tf.direction)
	if err != nil {
		return econ.TradeInputs{}, market.InstrumentSpec{}, err
	}

	in := econ.TradeInputs{
		Instrument: spec.Symbol,
		Direction:  dir,
		Entry:      tf.entry,
		Lots:       tf.lots,
		Notes:      tf.notes,
	}
	set := cmd.Flags().Changed
	if set("stop") {
		in.Stop = &tf.stop
	}
	if set("target") {
		in.Target = &tf.target
	}
	if set("exit") {
		in.Exit = &tf.exit
	}
	if set("contract") {
		in.ContractSize = &tf.contract
	}
	if set("quote-rate") {
		in.QuoteRate = &tf.quoteRate
	}
	return in, spec, nil
}
