package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tracker CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracker version %s\n", version)
		fmt.Println("A trade risk/reward calculator and ledger")
		fmt.Println("https://github.com/rustyeddy/tradetrack")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
