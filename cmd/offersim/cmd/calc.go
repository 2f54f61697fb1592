package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/format"
)

type calcOptions struct {
	equity string
	profit string
	salary string
	months int
	output string
}

// calcResult is what calc prints in json and yaml mode
type calcResult struct {
	Snapshot compensation.Snapshot `json:"snapshot" yaml:"snapshot"`
	Payout   *compensation.Payout  `json:"payout,omitempty" yaml:"payout,omitempty"`
}

func newCalcCmd(opts *globalOptions) *cobra.Command {
	co := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the compensation for one scenario",
		Long: `Apply the given inputs to a fresh model and print the derived values.

Inputs are applied in the order profit, equity, salary, so a salary overrides an
equity given in the same call. Values outside a range are clamped and snapped to
the nearest step.

Examples:
  offersim calc
  offersim calc --equity 6 --profit 200000
  offersim calc --salary 4525 -o json
  offersim calc --equity 5 --months 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, opts, co)
		},
	}

	cmd.Flags().StringVarP(&co.equity, "equity", "e", "", "profit share percent")
	cmd.Flags().StringVarP(&co.profit, "profit", "p", "", "assumed yearly company profit")
	cmd.Flags().StringVarP(&co.salary, "salary", "s", "", "monthly salary (moves equity)")
	cmd.Flags().IntVarP(&co.months, "months", "m", 0, "months served before leaving, shows buyout payout")
	cmd.Flags().StringVarP(&co.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func runCalc(cmd *cobra.Command, opts *globalOptions, co *calcOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := commandLogger(cmd, cfg)
	defer func() {
		_ = log.Sync()
	}()

	inputs, err := co.inputs()
	if err != nil {
		return err
	}

	terms := cfg.CompensationTerms()
	model := compensation.NewModel(terms)
	for _, in := range inputs {
		model.Apply(in)
		log.Debug("Input applied", zap.Stringer("field", in.Field), zap.String("value", in.Value.String()))
	}

	result := calcResult{Snapshot: model.Read()}
	if cmd.Flags().Changed("months") {
		if co.months < 0 {
			return fmt.Errorf("months must not be negative: %d", co.months)
		}
		payout := result.Snapshot.PayoutAfter(co.months, terms.Vesting)
		result.Payout = &payout
	}

	log.Debug("Offer calculated",
		zap.String("equity", result.Snapshot.Equity.String()),
		zap.String("profit", result.Snapshot.Profit.String()),
		zap.String("total", result.Snapshot.TotalYearlyCompensation.String()))

	out := cmd.OutOrStdout()
	switch co.output {
	case "table":
		return writeCalcTable(out, format.New(cfg.Locale, cfg.Currency), result, terms)
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format: %q", co.output)
	}
}

// inputs parses the given flags into input events, profit first and salary last
func (co *calcOptions) inputs() ([]compensation.Input, error) {
	var inputs []compensation.Input

	flags := []struct {
		name  string
		value string
		event func(decimal.Decimal) compensation.Input
	}{
		{"profit", co.profit, compensation.ProfitChanged},
		{"equity", co.equity, compensation.EquityChanged},
		{"salary", co.salary, compensation.SalaryChanged},
	}
	for _, f := range flags {
		if f.value == "" {
			continue
		}
		v, err := decimal.NewFromString(f.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", f.name, f.value, err)
		}
		inputs = append(inputs, f.event(v))
	}
	return inputs, nil
}

func writeCalcTable(w io.Writer, f *format.Formatter, result calcResult, terms compensation.Terms) error {
	s := result.Snapshot
	rows := [][]string{
		{"Monthly salary", f.Money(s.Salary)},
		{"Profit share", f.WholePercent(s.Equity)},
		{"Exit buyout", f.Percent(s.BuyoutPercent)},
		{"Company profit", f.Money(s.Profit)},
		{"Valuation", f.Money(s.Valuation)},
		{"Buyout amount", f.Money(s.BuyoutAmount)},
		{"Yearly salary", f.Money(s.YearlySalary)},
		{"Profit share amount", f.Money(s.ProfitShare)},
		{"Total yearly compensation", f.Money(s.TotalYearlyCompensation)},
	}

	if p := result.Payout; p != nil {
		rows = append(rows, []string{"Months served", strconv.Itoa(p.MonthsServed)})
		if p.Eligible {
			rows = append(rows, []string{"Buyout payout", fmt.Sprintf("%s within %d days", f.Money(p.Amount), p.DueDays)})
		} else {
			rows = append(rows, []string{"Buyout payout", fmt.Sprintf("none before %d months", terms.Vesting.CliffMonths)})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Quantity", "Value").
		Rows(rows...)

	_, err := fmt.Fprintln(w, format.Plain(t.Render()))
	return err
}
