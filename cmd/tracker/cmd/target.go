package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/econ"
)

var targetFlags struct {
	instrument string
	direction  string
	entry      float64
	usd        float64
	lots       float64
	contract   float64
	quoteRate  float64
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Solve the price that yields a given USD profit or loss",
	Long: `Answer the inverse question: at what price does this position's P/L equal
the requested USD amount? Negative amounts solve for a loss level.

Example:
  tracker target --instrument XAUUSD --direction Long --entry 1900 --usd 250 --lots 2`,
	Args: cobra.NoArgs,
	RunE: runTarget,
}

func init() {
	fl := targetCmd.Flags()
	fl.StringVar(&targetFlags.instrument, "instrument", "XAUUSD", "instrument symbol")
	fl.StringVar(&targetFlags.direction, "direction", "Long", "Long or Short")
	fl.Float64Var(&targetFlags.entry, "entry", 0, "entry price (required)")
	fl.Float64Var(&targetFlags.usd, "usd", 0, "USD target, negative for a loss level (required)")
	fl.Float64Var(&targetFlags.lots, "lots", 1, "position size in lots")
	fl.Float64Var(&targetFlags.contract, "contract", 0, "contract size per lot (defaults to the instrument's)")
	fl.Float64Var(&targetFlags.quoteRate, "quote-rate", 0, "quote-to-USD rate for non-USD quotes")
	_ = targetCmd.MarkFlagRequired("entry")
	_ = targetCmd.MarkFlagRequired("usd")
	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, args []string) error {
	spec, err := catalog.Lookup(targetFlags.instrument)
	if err != nil {
		return err
	}
	dir, err := econ.ParseDirection(targetFlags.direction)
	if err != nil {
		return err
	}

	contract := spec.ContractSize
	if cmd.Flags().Changed("contract") {
		contract = targetFlags.contract
	}

	price, err := econ.PriceFromUSDTarget(targetFlags.entry, dir, targetFlags.usd,
		spec.PipSize, contract, spec.QuoteIsUSD, targetFlags.quoteRate, targetFlags.lots)
	if err != nil {
		return fmt.Errorf("%s $%.2f from %g: %w", dir, targetFlags.usd, targetFlags.entry, err)
	}

	pipValue := econ.PipValueUSD(spec.PipSize, contract, spec.QuoteIsUSD, targetFlags.quoteRate)
	fmt.Printf("Instrument: %s - %s\n", spec.Symbol, spec.Description)
	fmt.Printf("Pip Value: $%.4f/lot, Lots: %g\n", pipValue, targetFlags.lots)
	fmt.Printf("Price for $%.2f (%s from %g): %.5f\n", targetFlags.usd, dir, targetFlags.entry, price)
	return nil
}
