package output

import (
	"github.com/counterdesk/calculators/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// FormatMoney formats an amount with exactly two fractional digits, no symbol.
func FormatMoney(amount decimal.Money) string { return amount.String() }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct shop.Decimal) string { return pct.StringFixed(2) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
