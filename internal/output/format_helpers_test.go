//go:build unit

package output

import (
	"testing"

	"github.com/counterdesk/calculators/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	v := decimal.MustMoney("1234.565")
	got := FormatMoney(v)
	want := "1234.57"
	if got != want {
		t.Errorf("FormatMoney(%v) = %q, want %q", v.Decimal, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := shop.RequireFromString("12.3456")
	got := FormatPercentage(v)
	want := "12.35"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestYesNo(t *testing.T) {
	if got, want := yesNo(true), "Yes"; got != want {
		t.Errorf("yesNo(true) = %q, want %q", got, want)
	}
	if got, want := yesNo(false), "No"; got != want {
		t.Errorf("yesNo(false) = %q, want %q", got, want)
	}
}
