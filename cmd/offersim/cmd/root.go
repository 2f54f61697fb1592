package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rovshanmuradov/offer-simulator/internal/config"
	"github.com/rovshanmuradov/offer-simulator/internal/logger"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	debug      bool
}

// NewRootCmd builds the command tree. Running it without a subcommand starts the TUI.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "offersim",
		Short: "Explore how salary, profit share and exit buyout trade off in an offer",
		Long: `Offer Simulator derives the yearly compensation and exit buyout of an offer
from two inputs: the profit share percentage and the assumed company profit.
Every extra point of profit share lowers the monthly salary and the buyout percentage.

Commands:
  tui        - Interactive calculator (default)
  calc       - Print one scenario
  scenarios  - Export every profit share and profit combination
  version    - Print the version

Examples:
  offersim
  offersim calc --equity 7 --profit 300000
  offersim calc --salary 4700 --months 12 -o yaml
  offersim scenarios --format csv --dir exports`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (yaml or json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newTUICmd(opts),
		newCalcCmd(opts),
		newScenariosCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig applies the persistent flags on top of the loaded configuration
func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.DebugLogging = true
	}
	return cfg, nil
}

// commandLogger logs to the command's stderr so stdout stays machine readable
func commandLogger(cmd *cobra.Command, cfg *config.Config) *zap.Logger {
	return logger.CreatePrettyLogger(cfg.DebugLogging, zapcore.AddSync(cmd.ErrOrStderr()))
}
