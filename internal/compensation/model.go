package compensation

import "github.com/shopspring/decimal"

// Model holds the two driver values of an offer. Everything else is derived on read.
//
// A Model belongs to a single interactive session and is not safe for concurrent use.
type Model struct {
	terms  Terms
	equity decimal.Decimal
	profit decimal.Decimal
}

// NewModel starts at the top of both driver ranges.
func NewModel(terms Terms) *Model {
	m := &Model{terms: terms}
	m.Reset()
	return m
}

// Reset moves both drivers back to the top of their ranges.
func (m *Model) Reset() {
	m.equity = m.terms.Equity.Snap(m.terms.Equity.Max)
	m.profit = m.terms.Profit.Snap(m.terms.Profit.Max)
}

func (m *Model) Terms() Terms            { return m.terms }
func (m *Model) Equity() decimal.Decimal { return m.equity }
func (m *Model) Profit() decimal.Decimal { return m.profit }

// SetEquity snaps v onto the equity grid and stores it.
func (m *Model) SetEquity(v decimal.Decimal) {
	m.equity = m.terms.Equity.Snap(v)
}

// SetProfit snaps v onto the profit grid and stores it.
func (m *Model) SetProfit(v decimal.Decimal) {
	m.profit = m.terms.Profit.Snap(v)
}

// SetSalary moves equity to the value whose derived salary is nearest to v.
func (m *Model) SetSalary(v decimal.Decimal) {
	m.SetEquity(m.terms.SalaryToEquity(v))
}

// NudgeEquity moves equity by n grid steps.
func (m *Model) NudgeEquity(n int) {
	m.SetEquity(m.equity.Add(m.terms.Equity.Step.Mul(decimal.NewFromInt(int64(n)))))
}

// NudgeProfit moves profit by n grid steps.
func (m *Model) NudgeProfit(n int) {
	m.SetProfit(m.profit.Add(m.terms.Profit.Step.Mul(decimal.NewFromInt(int64(n)))))
}

// NudgeSalary moves salary by n salary steps, which moves equity the opposite way.
func (m *Model) NudgeSalary(n int) {
	salary := m.Read().Salary
	m.SetSalary(salary.Add(m.terms.Salary.Step.Mul(decimal.NewFromInt(int64(n)))))
}

// Read derives the current snapshot. It never caches.
func (m *Model) Read() Snapshot {
	return m.terms.Derive(m.equity, m.profit)
}
