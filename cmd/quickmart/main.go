package main

import (
	"os"

	"github.com/counterdesk/calculators/internal/cli"
)

func main() {
	if err := cli.NewTradingCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
