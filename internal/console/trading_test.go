package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/counterdesk/calculators/internal/calculation"
	"github.com/counterdesk/calculators/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTrading(t *testing.T, calc *calculation.TransactionCalculator, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	session := NewTradingSession(calc, nil)
	require.NoError(t, session.Run(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out))
	return out.String()
}

func TestTradingSession_CreateProfit(t *testing.T) {
	calc := calculation.NewTransactionCalculator(nil)
	out := runTrading(t, calc,
		"1", "INV-1", "Ravi", "Rice", "4", "1000", "1250",
		"4")

	assert.Contains(t, out, "================== QuickMart Traders ==================")
	assert.Contains(t, out, "3. Calculate Profit/Loss (Recompute & Print)")
	assert.Contains(t, out, "Status              : PROFIT\n")
	assert.Contains(t, out, "Profit/Loss Amount  : 250.00\n")
	assert.Contains(t, out, "Profit Margin (%)   : 25.00\n")

	tx, err := calc.View()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProfit, tx.Status)
}

func TestTradingSession_BreakEvenViewAndRecompute(t *testing.T) {
	out := runTrading(t, calculation.NewTransactionCalculator(nil),
		"1", "INV-2", "", "", "1", "1000", "1000",
		"2", "3", "3",
		"4")
	assert.Equal(t, 4, strings.Count(out, "Status              : BREAK-EVEN\n"))
	assert.Equal(t, 4, strings.Count(out, "Profit Margin (%)   : 0.00\n"))
}

func TestTradingSession_EmptyState(t *testing.T) {
	out := runTrading(t, calculation.NewTransactionCalculator(nil), "2", "3", "4")
	assert.Equal(t, 2, strings.Count(out, "No transaction available. Please create a new transaction first.\n"))
}

func TestTradingSession_ValidationAbortsCreate(t *testing.T) {
	testCases := []struct {
		name    string
		lines   []string
		message string
	}{
		{"empty invoice", []string{"1", ""}, "Invoice No cannot be empty."},
		{"zero quantity", []string{"1", "INV", "C", "I", "0"}, "Quantity must be greater than 0."},
		{"text quantity", []string{"1", "INV", "C", "I", "two"}, "Quantity must be greater than 0."},
		{"zero purchase", []string{"1", "INV", "C", "I", "1", "0"}, "Purchase Amount must be greater than 0."},
		{"text purchase", []string{"1", "INV", "C", "I", "1", "ten"}, "Purchase Amount must be greater than 0."},
		{"negative selling", []string{"1", "INV", "C", "I", "1", "10", "-1"}, "Selling Amount must be >= 0."},
		{"text selling", []string{"1", "INV", "C", "I", "1", "10", ""}, "Selling Amount must be >= 0."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc := calculation.NewTransactionCalculator(nil)
			out := runTrading(t, calc, append(tc.lines, "4")...)
			assert.Contains(t, out, tc.message+"\n")
			assert.NotContains(t, out, "-------------- Last Transaction")
			assert.False(t, calc.HasTransaction())
		})
	}
}

func TestTradingSession_InvalidOption(t *testing.T) {
	out := runTrading(t, calculation.NewTransactionCalculator(nil), "5", "exit", "4")
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please select between 1 and 4.\n"))
	assert.True(t, strings.HasSuffix(out, "Thank you. Application closed normally.\n"))
}
