package cli

import (
	"net/http"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/console"
	"github.com/counterdesk/calculators/internal/output"
	"github.com/counterdesk/calculators/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewBillingCommand returns the medisure root command.
func NewBillingCommand() *cobra.Command {
	return newRootCommand(appDefinition{
		use:   "medisure",
		short: "MediSure Clinic patient billing: create, view and clear the last bill",
		wire: func(logger *zap.Logger, f output.Formatter) (interactive, http.Handler) {
			calc := calculation.NewBillCalculator(calculation.NewZapLogger(logger))
			return console.NewBillingSession(calc, f), server.NewBillingHandler(calc, logger)
		},
	})
}

// NewTradingCommand returns the quickmart root command.
func NewTradingCommand() *cobra.Command {
	return newRootCommand(appDefinition{
		use:   "quickmart",
		short: "QuickMart Traders profit/loss calculator for the last sale",
		wire: func(logger *zap.Logger, f output.Formatter) (interactive, http.Handler) {
			calc := calculation.NewTransactionCalculator(calculation.NewZapLogger(logger))
			return console.NewTradingSession(calc, f), server.NewTradingHandler(calc, logger)
		},
	})
}
