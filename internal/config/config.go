// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/rovshanmuradov/offer-simulator/internal/compensation"
	"github.com/rovshanmuradov/offer-simulator/internal/format"
)

const EnvPrefix = "OFFERSIM"

var (
	ErrInvalidLocale     = errors.New("invalid locale")
	ErrInvalidBufferSize = errors.New("invalid log_buffer_size")
	ErrInvalidTerms      = errors.New("invalid terms")
)

type ParamConfig struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Step float64 `mapstructure:"step"`
}

type ValuationConfig struct {
	BestSixMonthAverage float64 `mapstructure:"best_six_month_average"`
	LastSixMonthAverage float64 `mapstructure:"last_six_month_average"`
}

type VestingConfig struct {
	CliffMonths int `mapstructure:"cliff_months"`
	PayoutDays  int `mapstructure:"payout_days"`
}

type TermsConfig struct {
	Salary    ParamConfig     `mapstructure:"salary"`
	Equity    ParamConfig     `mapstructure:"equity"`
	Buyout    ParamConfig     `mapstructure:"buyout"`
	Profit    ParamConfig     `mapstructure:"profit"`
	Valuation ValuationConfig `mapstructure:"valuation"`
	Vesting   VestingConfig   `mapstructure:"vesting"`
}

type Config struct {
	DebugLogging  bool        `mapstructure:"debug_logging"`
	Locale        string      `mapstructure:"locale"`
	Currency      string      `mapstructure:"currency"`
	LogSpillFile  string      `mapstructure:"log_spill_file"`
	LogBufferSize int         `mapstructure:"log_buffer_size"`
	ExportDir     string      `mapstructure:"export_dir"`
	Terms         TermsConfig `mapstructure:"terms"`
}

const (
	DefaultLogSpillFile  = "logs/offersim.log"
	DefaultLogBufferSize = 500
	DefaultExportDir     = "exports"
)

func defaults() map[string]interface{} {
	t := compensation.DefaultTerms()
	f := func(d decimal.Decimal) float64 {
		v, _ := d.Float64()
		return v
	}

	return map[string]interface{}{
		"debug_logging":   false,
		"locale":          format.DefaultLocale,
		"currency":        format.DefaultCurrency,
		"log_spill_file":  DefaultLogSpillFile,
		"log_buffer_size": DefaultLogBufferSize,
		"export_dir":      DefaultExportDir,

		"terms.salary.min":  f(t.Salary.Min),
		"terms.salary.max":  f(t.Salary.Max),
		"terms.salary.step": f(t.Salary.Step),
		"terms.equity.min":  f(t.Equity.Min),
		"terms.equity.max":  f(t.Equity.Max),
		"terms.equity.step": f(t.Equity.Step),
		"terms.buyout.min":  f(t.Buyout.Min),
		"terms.buyout.max":  f(t.Buyout.Max),
		"terms.buyout.step": f(t.Buyout.Step),
		"terms.profit.min":  f(t.Profit.Min),
		"terms.profit.max":  f(t.Profit.Max),
		"terms.profit.step": f(t.Profit.Step),

		"terms.valuation.best_six_month_average": f(t.Valuation.BestSixMonthAverage),
		"terms.valuation.last_six_month_average": f(t.Valuation.LastSixMonthAverage),

		"terms.vesting.cliff_months": t.Vesting.CliffMonths,
		"terms.vesting.payout_days":  t.Vesting.PayoutDays,
	}
}

// LoadConfig reads an optional config file, applies OFFERSIM_* environment overrides and
// validates the result. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidLocale, cfg.Locale, err)
	}
	if cfg.LogBufferSize <= 0 {
		return ErrInvalidBufferSize
	}
	if err := cfg.CompensationTerms().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTerms, err)
	}
	return nil
}

// CompensationTerms converts the loaded terms into model terms.
func (c *Config) CompensationTerms() compensation.Terms {
	p := func(pc ParamConfig) compensation.Param {
		return compensation.NewParam(pc.Min, pc.Max, pc.Step)
	}
	t := c.Terms

	return compensation.Terms{
		Salary: p(t.Salary),
		Equity: p(t.Equity),
		Buyout: p(t.Buyout),
		Profit: p(t.Profit),
		Valuation: compensation.Valuation{
			BestSixMonthAverage: decimal.NewFromFloat(t.Valuation.BestSixMonthAverage),
			LastSixMonthAverage: decimal.NewFromFloat(t.Valuation.LastSixMonthAverage),
		},
		Vesting: compensation.Vesting{
			CliffMonths: t.Vesting.CliffMonths,
			PayoutDays:  t.Vesting.PayoutDays,
		},
	}
}
