package decimal

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrBlankAmount is returned by ParseMoney when the input has no digits at all.
var ErrBlankAmount = errors.New("amount is blank")

// ErrAmountOutOfRange is returned by ParseMoney for amounts with more than
// MaxAmountDigits digits on either side of the decimal point.
var ErrAmountOutOfRange = errors.New("amount out of range")

// MaxAmountDigits bounds the integer and fractional digits of a parsed amount.
const MaxAmountDigits = 28

// plainAmount accepts an optional sign and digits with at most one point.
// Exponent notation is rejected.
var plainAmount = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

var hundred = decimal.NewFromInt(100)

// Money represents a monetary amount with exact fixed-point precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromInt creates a new Money instance from a whole amount
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney is NewMoneyFromString for literals known to be valid.
func MustMoney(value string) Money {
	m, err := NewMoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses user-entered text, ignoring surrounding whitespace.
// Only plain decimal notation within MaxAmountDigits is accepted.
func ParseMoney(text string) (Money, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Money{}, ErrBlankAmount
	}
	if !plainAmount.MatchString(trimmed) {
		return Money{}, fmt.Errorf("invalid amount %q", trimmed)
	}
	whole, frac, _ := strings.Cut(strings.TrimLeft(trimmed, "+-"), ".")
	if len(strings.TrimLeft(whole, "0")) > MaxAmountDigits || len(frac) > MaxAmountDigits {
		return Money{}, fmt.Errorf("invalid amount %q: %w", trimmed, ErrAmountOutOfRange)
	}
	m, err := NewMoneyFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", trimmed, err)
	}
	return m, nil
}

// UnmarshalJSON accepts a JSON number or string and applies ParseMoney rules.
func (m *Money) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		return nil
	}
	parsed, err := ParseMoney(strings.Trim(text, `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalText applies ParseMoney rules to text-encoded amounts such as YAML scalars.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Percent returns rate (a fraction, 0.10 for ten percent) of the amount.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Ratio returns m / of, or zero when of is zero.
func (m Money) Ratio(of Money) decimal.Decimal {
	if of.IsZero() {
		return decimal.Zero
	}
	return m.Decimal.Div(of.Decimal)
}

// PercentOf returns m as a percentage of of, or zero when of is zero.
func (m Money) PercentOf(of Money) decimal.Decimal {
	return m.Ratio(of).Mul(hundred)
}

// Cmp compares two amounts: -1, 0 or +1
func (m Money) Cmp(other Money) int {
	return m.Decimal.Cmp(other.Decimal)
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two fractional digits
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
