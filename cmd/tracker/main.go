package main

import (
	"os"

	"github.com/rustyeddy/tradetrack/cmd/tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
