package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/offer-simulator/internal/export"
)

type scenariosOptions struct {
	format string
	dir    string
	profit string
}

func newScenariosCmd(opts *globalOptions) *cobra.Command {
	so := &scenariosOptions{}

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Export every profit share and profit combination",
		Long: `Write one row per profit share and profit level with all derived values.

Examples:
  offersim scenarios
  offersim scenarios --format json --dir reports
  offersim scenarios --profit 250000 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, so)
		},
	}

	cmd.Flags().StringVarP(&so.format, "format", "f", "csv", "export format: csv, json or yaml")
	cmd.Flags().StringVarP(&so.dir, "dir", "d", "", "output directory (default from config export_dir)")
	cmd.Flags().StringVarP(&so.profit, "profit", "p", "", "only export this profit level")
	return cmd
}

func runScenarios(cmd *cobra.Command, opts *globalOptions, so *scenariosOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := commandLogger(cmd, cfg)
	defer func() {
		_ = log.Sync()
	}()

	exportFormat, err := export.ParseFormat(so.format)
	if err != nil {
		return err
	}

	options := export.Options{
		Format:    exportFormat,
		OutputDir: cfg.ExportDir,
	}
	if so.dir != "" {
		options.OutputDir = so.dir
	}
	if so.profit != "" {
		profit, err := decimal.NewFromString(so.profit)
		if err != nil {
			return fmt.Errorf("invalid --profit %q: %w", so.profit, err)
		}
		options.Profit = &profit
	}

	path, err := export.NewScenarioExporter(log).ExportContext(cmd.Context(), cfg.CompensationTerms(), options)
	if err != nil {
		return fmt.Errorf("export scenarios: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
