package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewTradingCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootOptions_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\nlogging:\n  level: error\n"), 0644))

	opts := &rootOptions{configPath: path, outputFormat: "yaml", logFormat: "json"}
	rt, err := opts.setup()
	require.NoError(t, err)
	defer rt.close()

	assert.Equal(t, "yaml", rt.formatter.Name())
	assert.Equal(t, "json", rt.cfg.Logging.Format)
}

func TestRootOptions_Errors(t *testing.T) {
	testCases := []struct {
		name string
		opts rootOptions
		msg  string
	}{
		{"output", rootOptions{outputFormat: "html"}, "unsupported output format"},
		{"log level", rootOptions{logLevel: "loud"}, "invalid log level"},
		{"log format", rootOptions{logFormat: "xml"}, "invalid log format"},
		{"config", rootOptions{configPath: "missing.yaml"}, "failed to read config file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.setup()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestTradingCommand_RejectsArguments(t *testing.T) {
	_, err := execute(t, "", "extra")
	assert.Error(t, err)
}

func TestTradingCommand_CSVOutput(t *testing.T) {
	out, err := execute(t, "1\nINV-5\nC\nI\n2\n100\n90\n4\n", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "InvoiceNo,CustomerName,ItemName,Quantity")
	assert.Contains(t, out, "INV-5,C,I,2,100.00,90.00,LOSS,10.00,10.00")
}

func TestCommands_HaveServeSubcommand(t *testing.T) {
	serve, _, err := NewBillingCommand().Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("addr"))
}
