package compensation

import "github.com/shopspring/decimal"

// Snapshot is every quantity derived from one (equity, profit) pair.
type Snapshot struct {
	Salary                  decimal.Decimal `json:"salary" yaml:"salary"`
	Equity                  decimal.Decimal `json:"equity" yaml:"equity"`
	Profit                  decimal.Decimal `json:"profit" yaml:"profit"`
	BuyoutPercent           decimal.Decimal `json:"buyout_percent" yaml:"buyout_percent"`
	Valuation               decimal.Decimal `json:"valuation" yaml:"valuation"`
	BuyoutAmount            decimal.Decimal `json:"buyout_amount" yaml:"buyout_amount"`
	YearlySalary            decimal.Decimal `json:"yearly_salary" yaml:"yearly_salary"`
	ProfitShare             decimal.Decimal `json:"profit_share" yaml:"profit_share"`
	TotalYearlyCompensation decimal.Decimal `json:"total_yearly_compensation" yaml:"total_yearly_compensation"`
}

// Payout is what a stakeholder leaving after a given tenure is owed.
type Payout struct {
	MonthsServed int             `json:"months_served" yaml:"months_served"`
	Eligible     bool            `json:"eligible" yaml:"eligible"`
	Amount       decimal.Decimal `json:"amount" yaml:"amount"`
	DueDays      int             `json:"due_days" yaml:"due_days"`
}

// PayoutAfter applies the vesting cliff to the buyout amount. Leaving before the cliff
// forfeits the buyout entirely.
func (s Snapshot) PayoutAfter(monthsServed int, v Vesting) Payout {
	if monthsServed < v.CliffMonths {
		return Payout{MonthsServed: monthsServed, Amount: decimal.Zero}
	}
	return Payout{
		MonthsServed: monthsServed,
		Eligible:     true,
		Amount:       s.BuyoutAmount,
		DueDays:      v.PayoutDays,
	}
}
