package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/counterdesk/calculators/internal/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd *cobra.Command, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestMediSureSession(t *testing.T) {
	input := strings.Join([]string{
		"2",                                                // view before create
		"1", "B-100", "Asha Rao", "Y", "500", "200", "300", // insured bill
		"2",
		"1", "B-101", "Ben", "N", "500", "200", "300", // replaces the first bill
		"2",
		"3",
		"2",
		"7",
		"4",
	}, "\n") + "\n"

	out := runCommand(t, cli.NewBillingCommand(), input)

	assert.Equal(t, 2, strings.Count(out, "No bill available. Please create a new bill first."))
	assert.Contains(t, out, "Final Payable: 900.00")
	assert.Contains(t, out, "Final Payable: 1000.00")
	assert.Contains(t, out, "BillId: B-101")
	assert.Contains(t, out, "Last bill cleared.")
	assert.Contains(t, out, "Invalid option. Please select between 1 and 4.")
	assert.True(t, strings.HasSuffix(out, "Thank you. Application closed normally.\n"))
}

func TestQuickMartSession(t *testing.T) {
	input := strings.Join([]string{
		"3",
		"1", "INV-1", "Ravi", "Rice", "10", "1000", "1250",
		"3",
		"1", "INV-2", "Meena", "Oil", "1", "1000", "1000",
		"2",
		"4",
	}, "\n") + "\n"

	out := runCommand(t, cli.NewTradingCommand(), input)

	assert.Contains(t, out, "No transaction available. Please create a new transaction first.")
	assert.Equal(t, 2, strings.Count(out, "Status              : PROFIT"))
	assert.Equal(t, 2, strings.Count(out, "Status              : BREAK-EVEN"))
	assert.Contains(t, out, "Profit Margin (%)   : 25.00")
	assert.Contains(t, out, "Profit Margin (%)   : 0.00")
}
