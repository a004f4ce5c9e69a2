package decimal

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoneyFromInt(500)
	if m.String() != "500.00" {
		t.Fatalf("NewMoneyFromInt display mismatch: got %s", m.String())
	}

	d := stddec.RequireFromString("10.125")
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("  200.5 \r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.String(); got != "200.50" {
		t.Fatalf("ParseMoney got %s", got)
	}

	if _, err := ParseMoney("   "); !errors.Is(err, ErrBlankAmount) {
		t.Fatalf("expected ErrBlankAmount, got %v", err)
	}
	if _, err := ParseMoney("12abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
	neg, err := ParseMoney("-5")
	if err != nil || !neg.IsNegative() {
		t.Fatalf("negative amounts must parse, got %s err=%v", neg, err)
	}
}

func TestParseMoney_RejectsExponentAndOversize(t *testing.T) {
	for _, in := range []string{"1e3", "1E3", "1e30000000", "2.5e-1", "1.2.3", "+", "."} {
		if _, err := ParseMoney(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}

	huge := strings.Repeat("9", MaxAmountDigits+1)
	if _, err := ParseMoney(huge); !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("expected ErrAmountOutOfRange for %d digits, got %v", len(huge), err)
	}
	if _, err := ParseMoney("0." + huge); !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("expected ErrAmountOutOfRange for long fraction, got %v", err)
	}

	limit := strings.Repeat("9", MaxAmountDigits)
	m, err := ParseMoney("-" + limit + ".5")
	if err != nil {
		t.Fatalf("amount at the digit limit should parse: %v", err)
	}
	if !m.IsNegative() {
		t.Fatalf("sign lost, got %s", m.Decimal)
	}
	if _, err := ParseMoney("000" + limit); err != nil {
		t.Fatalf("leading zeros should not count toward the limit: %v", err)
	}
	for _, in := range []string{".5", "5.", "+5"} {
		if _, err := ParseMoney(in); err != nil {
			t.Fatalf("%q should parse: %v", in, err)
		}
	}
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	var v struct {
		Fee Money `json:"fee"`
	}
	if err := json.Unmarshal([]byte(`{"fee": 200.5}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Fee.String() != "200.50" {
		t.Fatalf("number form got %s", v.Fee)
	}
	if err := json.Unmarshal([]byte(`{"fee": "12.25"}`), &v); err != nil || v.Fee.String() != "12.25" {
		t.Fatalf("string form got %s err=%v", v.Fee, err)
	}
	for _, body := range []string{`{"fee": 1e30000000}`, `{"fee": "1e3"}`, `{"fee": ""}`} {
		if err := json.Unmarshal([]byte(body), &v); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
}

func TestRounding(t *testing.T) {
	// Display rounding is half away from zero.
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m := MustMoney(c.in)
		if got := m.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
		if got := m.String(); got != c.out {
			t.Fatalf("String(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	a := MustMoney("0.1")
	b := MustMoney("0.2")
	if !a.Add(b).Equal(MustMoney("0.3")) {
		t.Fatalf("0.1 + 0.2 should be exactly 0.3, got %s", a.Add(b).Decimal)
	}
	if got := MustMoney("10.10").Sub(MustMoney("5.05")).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if got := MustMoney("10.10").Mul(stddec.NewFromFloat(2.5)).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := MustMoney("10.10").Div(stddec.NewFromInt(2)).String(); got != "5.05" {
		t.Fatalf("Div got %s", got)
	}
}

func TestPercentKeepsPrecision(t *testing.T) {
	gross := MustMoney("333.35")
	discount := gross.Percent(stddec.New(10, -2))
	if discount.Decimal.String() != "33.335" {
		t.Fatalf("Percent should not pre-round, got %s", discount.Decimal)
	}
	if discount.String() != "33.34" {
		t.Fatalf("Percent display got %s", discount.String())
	}
}

func TestRatioAndPercentOf(t *testing.T) {
	if got := MustMoney("250").PercentOf(MustMoney("1000")).StringFixed(2); got != "25.00" {
		t.Fatalf("PercentOf got %s", got)
	}
	if !MustMoney("5").Ratio(Zero()).IsZero() {
		t.Fatalf("Ratio by zero should be zero")
	}
	if got := MustMoney("1").PercentOf(MustMoney("3")).StringFixed(2); got != "33.33" {
		t.Fatalf("PercentOf got %s", got)
	}
}

func TestComparisons(t *testing.T) {
	a := NewMoneyFromInt(10)
	b := NewMoneyFromInt(20)

	if !b.GreaterThan(a) || a.GreaterThan(b) {
		t.Fatalf("GreaterThan logic failure")
	}
	if !a.LessThan(b) || b.LessThan(a) {
		t.Fatalf("LessThan logic failure")
	}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(NewMoneyFromInt(10)) != 0 {
		t.Fatalf("Cmp logic failure")
	}
	if !MustMoney("10.00").Equal(a) {
		t.Fatalf("Equal should ignore trailing zeros")
	}
	if !Zero().IsZero() || !(Money{}).IsZero() {
		t.Fatalf("Zero should be zero")
	}
}
