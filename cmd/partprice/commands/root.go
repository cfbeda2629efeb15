package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"partprice/internal/aggregate"
	"partprice/internal/config"
	"partprice/internal/logx"
)

type rootOptions struct {
	configPath string
	parallel   int
	logLevel   string

	cfg config.Config
	agg *aggregate.Aggregator
}

// NewRootCmd builds the partprice command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "partprice",
		Short:         "partprice compares distributor prices for electronic components.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "api_keys.json5", "path to the JSON5 file holding API keys and settings")
	cmd.PersistentFlags().IntVar(&opts.parallel, "parallel", 1, "number of vendors queried at once per part")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	cmd.AddCommand(newFindCmd(opts), newOffersCmd(opts))
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Run.Parallel = o.parallel
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Run.LogLevel = o.logLevel
	}
	o.cfg = cfg

	logger := logx.New(cmd.ErrOrStderr(), logx.ParseLevel(cfg.Run.LogLevel))
	ctx := logx.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	o.agg = newAggregator(ctx, cfg)
	return nil
}

// Execute runs the CLI and exits 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
