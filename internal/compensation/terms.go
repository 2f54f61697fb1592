package compensation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Default offer constants.
const (
	DefaultSalaryMin   = 4000
	DefaultSalaryStep  = 175
	DefaultSalarySteps = 6

	DefaultEquityMin  = 5
	DefaultEquityMax  = 10
	DefaultEquityStep = 1

	DefaultBuyoutBase  = 10
	DefaultBuyoutStep  = 0.2
	DefaultBuyoutSteps = 5

	DefaultProfitMin  = 100000
	DefaultProfitMax  = 500000
	DefaultProfitStep = 25000

	DefaultBestSixMonthAverage = 20000
	DefaultLastSixMonthAverage = 15000

	DefaultCliffMonths = 6
	DefaultPayoutDays  = 30
)

var ErrNegative = errors.New("value must not be negative")

// Valuation holds the two six-month profit averages the buyout valuation is built from.
type Valuation struct {
	BestSixMonthAverage decimal.Decimal `json:"best_six_month_average" yaml:"best_six_month_average"`
	LastSixMonthAverage decimal.Decimal `json:"last_six_month_average" yaml:"last_six_month_average"`
}

// Amount is best*6 + last*6.
func (v Valuation) Amount() decimal.Decimal {
	six := decimal.NewFromInt(6)
	return v.BestSixMonthAverage.Mul(six).Add(v.LastSixMonthAverage.Mul(six))
}

// Vesting describes when a departing stakeholder is owed the buyout.
type Vesting struct {
	CliffMonths int `json:"cliff_months" yaml:"cliff_months"`
	PayoutDays  int `json:"payout_days" yaml:"payout_days"`
}

// Terms are the constants an offer is evaluated against. Equity is the driver; Salary and
// Buyout describe the views derived from it.
type Terms struct {
	Salary    Param     `json:"salary" yaml:"salary"`
	Equity    Param     `json:"equity" yaml:"equity"`
	Buyout    Param     `json:"buyout" yaml:"buyout"`
	Profit    Param     `json:"profit" yaml:"profit"`
	Valuation Valuation `json:"valuation" yaml:"valuation"`
	Vesting   Vesting   `json:"vesting" yaml:"vesting"`
}

// DefaultTerms returns the reference offer.
func DefaultTerms() Terms {
	return Terms{
		Salary: NewParam(
			DefaultSalaryMin,
			DefaultSalaryMin+DefaultSalaryStep*(DefaultSalarySteps-1),
			DefaultSalaryStep,
		),
		Equity: NewParam(DefaultEquityMin, DefaultEquityMax, DefaultEquityStep),
		Buyout: NewParam(
			DefaultBuyoutBase,
			DefaultBuyoutBase+DefaultBuyoutStep*DefaultBuyoutSteps,
			DefaultBuyoutStep,
		),
		Profit: NewParam(DefaultProfitMin, DefaultProfitMax, DefaultProfitStep),
		Valuation: Valuation{
			BestSixMonthAverage: decimal.NewFromInt(DefaultBestSixMonthAverage),
			LastSixMonthAverage: decimal.NewFromInt(DefaultLastSixMonthAverage),
		},
		Vesting: Vesting{
			CliffMonths: DefaultCliffMonths,
			PayoutDays:  DefaultPayoutDays,
		},
	}
}

// Validate checks every parameter and the valuation and vesting inputs.
func (t Terms) Validate() error {
	params := []struct {
		name string
		p    Param
	}{
		{"salary", t.Salary},
		{"equity", t.Equity},
		{"buyout", t.Buyout},
		{"profit", t.Profit},
	}
	for _, item := range params {
		if err := item.p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", item.name, err)
		}
	}
	if t.Valuation.BestSixMonthAverage.IsNegative() || t.Valuation.LastSixMonthAverage.IsNegative() {
		return fmt.Errorf("valuation: %w", ErrNegative)
	}
	if t.Vesting.CliffMonths < 0 || t.Vesting.PayoutDays < 0 {
		return fmt.Errorf("vesting: %w", ErrNegative)
	}
	return nil
}

// Derive computes the full snapshot for the given driver values. Inputs are used as given;
// callers that need clamping go through Model.
func (t Terms) Derive(equity, profit decimal.Decimal) Snapshot {
	hundred := decimal.NewFromInt(100)
	given := t.Equity.Max.Sub(equity)

	salary := t.Salary.Min.Add(given.Mul(t.Salary.Step))
	buyout := t.Buyout.Min.Add(given.Mul(t.Buyout.Step))
	valuation := t.Valuation.Amount()
	yearly := salary.Mul(decimal.NewFromInt(12))
	share := profit.Mul(equity).Div(hundred)

	return Snapshot{
		Salary:                  salary,
		Equity:                  equity,
		Profit:                  profit,
		BuyoutPercent:           buyout,
		Valuation:               valuation,
		BuyoutAmount:            valuation.Mul(buyout).Div(hundred),
		YearlySalary:            yearly,
		ProfitShare:             share,
		TotalYearlyCompensation: yearly.Add(share),
	}
}

// SalaryToEquity inverts the salary formula: equityMax - round((salary - salaryMin) / salaryStep).
// The result is not snapped.
func (t Terms) SalaryToEquity(salary decimal.Decimal) decimal.Decimal {
	if !t.Salary.Step.IsPositive() {
		return t.Equity.Max
	}
	steps := roundHalfUp(salary.Sub(t.Salary.Min).Div(t.Salary.Step))
	return t.Equity.Max.Sub(steps)
}
