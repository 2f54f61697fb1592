package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// Options configures the export behavior
type Options struct {
	Format    Format
	OutputDir string
	// Profit restricts the grid to one profit level when set.
	Profit *decimal.Decimal
}

// Summary contains summary statistics for an exported grid
type Summary struct {
	Scenarios   int             `json:"scenarios" yaml:"scenarios"`
	MinTotal    decimal.Decimal `json:"min_total" yaml:"min_total"`
	MaxTotal    decimal.Decimal `json:"max_total" yaml:"max_total"`
	MinBuyout   decimal.Decimal `json:"min_buyout_amount" yaml:"min_buyout_amount"`
	MaxBuyout   decimal.Decimal `json:"max_buyout_amount" yaml:"max_buyout_amount"`
	BestEquity  decimal.Decimal `json:"best_equity" yaml:"best_equity"`
	BestProfit  decimal.Decimal `json:"best_profit" yaml:"best_profit"`
	WorstEquity decimal.Decimal `json:"worst_equity" yaml:"worst_equity"`
	WorstProfit decimal.Decimal `json:"worst_profit" yaml:"worst_profit"`
}

// Report is the document written for JSON and YAML exports.
type Report struct {
	ExportTime time.Time               `json:"export_time" yaml:"export_time"`
	Terms      compensation.Terms      `json:"terms" yaml:"terms"`
	Summary    Summary                 `json:"summary" yaml:"summary"`
	Scenarios  []compensation.Snapshot `json:"scenarios" yaml:"scenarios"`
}

// Grid derives a snapshot for every legal equity value against every legal profit value,
// or against a single snapped profit when one is given. Rows are ordered by profit, then equity.
func Grid(terms compensation.Terms, profit *decimal.Decimal) []compensation.Snapshot {
	profits := terms.Profit.Values()
	if profit != nil {
		profits = []decimal.Decimal{terms.Profit.Snap(*profit)}
	}
	equities := terms.Equity.Values()

	rows := make([]compensation.Snapshot, 0, len(profits)*len(equities))
	for _, p := range profits {
		for _, e := range equities {
			rows = append(rows, terms.Derive(e, p))
		}
	}
	return rows
}

// Summarize finds the extremes of a grid.
func Summarize(rows []compensation.Snapshot) Summary {
	summary := Summary{Scenarios: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	best, worst := rows[0], rows[0]
	summary.MinBuyout, summary.MaxBuyout = rows[0].BuyoutAmount, rows[0].BuyoutAmount
	for _, row := range rows[1:] {
		if row.TotalYearlyCompensation.GreaterThan(best.TotalYearlyCompensation) {
			best = row
		}
		if row.TotalYearlyCompensation.LessThan(worst.TotalYearlyCompensation) {
			worst = row
		}
		summary.MinBuyout = decimal.Min(summary.MinBuyout, row.BuyoutAmount)
		summary.MaxBuyout = decimal.Max(summary.MaxBuyout, row.BuyoutAmount)
	}

	summary.MaxTotal, summary.BestEquity, summary.BestProfit = best.TotalYearlyCompensation, best.Equity, best.Profit
	summary.MinTotal, summary.WorstEquity, summary.WorstProfit = worst.TotalYearlyCompensation, worst.Equity, worst.Profit
	return summary
}

// CSVHeaders lists the column order used by WriteCSV
func CSVHeaders() []string {
	return []string{
		"equity", "profit", "salary", "buyout_percent", "valuation", "buyout_amount",
		"yearly_salary", "profit_share", "total_yearly_compensation",
	}
}

func csvRecord(s compensation.Snapshot) []string {
	return []string{
		s.Equity.String(),
		s.Profit.String(),
		s.Salary.String(),
		s.BuyoutPercent.String(),
		s.Valuation.String(),
		s.BuyoutAmount.String(),
		s.YearlySalary.String(),
		s.ProfitShare.String(),
		s.TotalYearlyCompensation.String(),
	}
}

// WriteCSV writes a header line and one record per snapshot
func WriteCSV(w io.Writer, rows []compensation.Snapshot) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("failed to write scenario: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Encode writes a report in the given format. CSV carries the scenarios only.
func Encode(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, report.Scenarios)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

const (
	createMaxTries     = 3
	createInitialDelay = 50 * time.Millisecond
)

// ScenarioExporter writes scenario grids to files
type ScenarioExporter struct {
	logger *zap.Logger
	now    func() time.Time
	create func(name string) (*os.File, error)
}

// NewScenarioExporter creates a new scenario exporter
func NewScenarioExporter(logger *zap.Logger) *ScenarioExporter {
	return &ScenarioExporter{
		logger: logger,
		now:    time.Now,
		create: os.Create,
	}
}

// Export builds the grid for terms and writes it into options.OutputDir.
// It returns the written path.
func (se *ScenarioExporter) Export(terms compensation.Terms, options Options) (string, error) {
	return se.ExportContext(context.Background(), terms, options)
}

// ExportContext is Export with a context bounding the file creation retries.
// Nothing is written when the format is unknown, and a file that fails to encode is removed.
func (se *ScenarioExporter) ExportContext(ctx context.Context, terms compensation.Terms, options Options) (string, error) {
	format, err := ParseFormat(string(options.Format))
	if err != nil {
		return "", err
	}

	var profit *decimal.Decimal
	if options.Profit != nil {
		snapped := terms.Profit.Snap(*options.Profit)
		profit = &snapped
	}

	rows := Grid(terms, profit)
	if len(rows) == 0 {
		return "", fmt.Errorf("no scenarios to export")
	}

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(options.OutputDir, se.generateFilename(format, profit))
	file, err := se.createFile(ctx, outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	report := Report{
		ExportTime: se.now(),
		Terms:      terms,
		Summary:    Summarize(rows),
		Scenarios:  rows,
	}
	if err := Encode(file, format, report); err != nil {
		file.Close()
		if rmErr := os.Remove(outputPath); rmErr != nil {
			se.logger.Warn("Failed to remove partial export", zap.String("file", outputPath), zap.Error(rmErr))
		}
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	se.logger.Info("Scenarios exported",
		zap.String("file", outputPath),
		zap.Int("count", len(rows)),
		zap.String("format", string(format)))

	return outputPath, nil
}

// createFile retries transient failures. Missing directories and permission problems fail at once.
func (se *ScenarioExporter) createFile(ctx context.Context, path string) (*os.File, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = createInitialDelay

	notify := func(err error, d time.Duration) {
		se.logger.Warn("Retrying export file creation", zap.String("file", path), zap.Error(err), zap.Duration("backoff", d))
	}

	operation := func() (*os.File, error) {
		file, err := se.create(path)
		if err != nil && (errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist)) {
			return nil, backoff.Permanent(err)
		}
		return file, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(createMaxTries),
		backoff.WithNotify(notify))
}

// generateFilename names the file after the format and the snapped profit, if any
func (se *ScenarioExporter) generateFilename(format Format, profit *decimal.Decimal) string {
	timestamp := se.now().Format("20060102_150405")

	prefix := "scenarios_all"
	if profit != nil {
		prefix = "scenarios_profit_" + profit.StringFixed(0)
	}

	return fmt.Sprintf("%s_%s.%s", prefix, timestamp, format)
}
