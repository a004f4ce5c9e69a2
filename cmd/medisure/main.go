package main

import (
	"os"

	"github.com/counterdesk/calculators/internal/cli"
)

func main() {
	if err := cli.NewBillingCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
