// Package cli builds the cobra commands for the medisure and quickmart binaries.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/counterdesk/calculators/internal/config"
	"github.com/counterdesk/calculators/internal/logging"
	"github.com/counterdesk/calculators/internal/output"
	"github.com/counterdesk/calculators/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type interactive interface {
	Run(in io.Reader, out io.Writer) error
}

// appDefinition describes one calculator binary. wire is called once per
// command execution so the interactive session and the HTTP handler share
// a single calculator.
type appDefinition struct {
	use   string
	short string
	wire  func(logger *zap.Logger, f output.Formatter) (interactive, http.Handler)
}

type rootOptions struct {
	configPath   string
	logLevel     string
	logFormat    string
	outputFormat string
}

type appRuntime struct {
	cfg       *config.Config
	logger    *zap.Logger
	formatter output.Formatter
}

// setup loads config, applies flag overrides (flags beat config) and builds
// the logger and formatter.
func (o *rootOptions) setup() (*appRuntime, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	if o.outputFormat != "" {
		cfg.Output.Format = o.outputFormat
	}

	f, err := output.Lookup(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Logging, o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &appRuntime{cfg: cfg, logger: logger, formatter: f}, nil
}

func (r *appRuntime) close() { _ = r.logger.Sync() }

func newRootCommand(def appDefinition) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          def.use,
		Short:        def.short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.setup()
			if err != nil {
				return err
			}
			defer rt.close()

			session, _ := def.wire(rt.logger, rt.formatter)
			rt.logger.Debug("interactive session started", zap.String("app", def.use), zap.String("output", rt.formatter.Name()))
			return session.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format override (console, json)")
	pf.StringVarP(&opts.outputFormat, "output", "o", "", "record output format (console, json, yaml, csv)")

	cmd.AddCommand(newServeCommand(def, opts))
	return cmd
}

func newServeCommand(def appDefinition, opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP instead of the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.setup()
			if err != nil {
				return err
			}
			defer rt.close()
			if addr == "" {
				addr = rt.cfg.Server.Address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, handler := def.wire(rt.logger, rt.formatter)
			return server.Serve(ctx, addr, handler, rt.logger.With(zap.String("app", def.use)))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
