package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/econ"
	"github.com/rustyeddy/tradetrack/market"
)

var calcFlags tradeFlags

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Price a position without saving it",
	Long: `Calculate pip distances and USD amounts for a position's stop, target
and exit prices. Nothing is persisted; use "tracker add" to save.

Examples:
  tracker calc --instrument XAUUSD --direction Long --entry 1900 --stop 1895 --lots 1
  tracker calc --instrument USDJPY --entry 150 --exit 150.50 --quote-rate 150`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	addTradeFlags(calcCmd, &calcFlags)
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	in, spec, err := calcFlags.inputs(cmd)
	if err != nil {
		return err
	}
	ev, err := econ.Evaluate(in, spec)
	if err != nil {
		return err
	}
	printEvaluation(ev, spec)
	return nil
}

func printEvaluation(ev econ.Evaluation, spec market.InstrumentSpec) {
	fmt.Printf("Instrument: %s - %s\n", spec.Symbol, spec.Description)
	fmt.Printf("Direction: %s, Lots: %g, Contract Size: %g\n", ev.Direction, ev.Lots, ev.ContractSize)
	fmt.Printf("Pip Size: %g, Pip Value: $%.4f/lot\n", ev.PipSize, ev.PipValue)

	if ev.Stop != nil {
		fmt.Printf("\nStop Loss: %g\n", *ev.Stop)
		fmt.Printf("Pips to SL: %.2f\n", *ev.PipsToStop)
		fmt.Printf("USD at SL: $%.2f\n", *ev.USDToStop)
	}
	if ev.Target != nil {
		fmt.Printf("\nTake Profit: %g\n", *ev.Target)
		fmt.Printf("Pips to TP: %.2f\n", *ev.PipsToTarget)
		fmt.Printf("USD at TP: $%.2f\n", *ev.USDToTarget)
	}
	if ev.Exit != nil {
		fmt.Printf("\nExit Price: %g\n", *ev.Exit)
		fmt.Printf("Realized Pips: %.2f\n", *ev.RealizedPips)
		fmt.Printf("Realized USD: $%.2f\n", *ev.RealizedUSD)
	}
}
