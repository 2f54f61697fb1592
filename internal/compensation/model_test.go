package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTermsValid(t *testing.T) {
	terms := DefaultTerms()
	require.NoError(t, terms.Validate())

	assertDecimal(t, "4875", terms.Salary.Max)
	assertDecimal(t, "11", terms.Buyout.Max)
	assertDecimal(t, "210000", terms.Valuation.Amount())
}

func TestTermsValidateRejectsBadInput(t *testing.T) {
	terms := DefaultTerms()
	terms.Profit = NewParam(500000, 100000, 25000)
	assert.ErrorIs(t, terms.Validate(), ErrInvertedRange)

	terms = DefaultTerms()
	terms.Valuation.LastSixMonthAverage = dec("-1")
	assert.ErrorIs(t, terms.Validate(), ErrNegative)

	terms = DefaultTerms()
	terms.Vesting.CliffMonths = -2
	assert.ErrorIs(t, terms.Validate(), ErrNegative)
}

func TestInitialSnapshot(t *testing.T) {
	m := NewModel(DefaultTerms())
	s := m.Read()

	assertDecimal(t, "10", s.Equity)
	assertDecimal(t, "500000", s.Profit)
	assertDecimal(t, "4000", s.Salary)
	assertDecimal(t, "10", s.BuyoutPercent)
	assertDecimal(t, "210000", s.Valuation)
	assertDecimal(t, "21000", s.BuyoutAmount)
	assertDecimal(t, "48000", s.YearlySalary)
	assertDecimal(t, "50000", s.ProfitShare)
	assertDecimal(t, "98000", s.TotalYearlyCompensation)
}

func TestSetEquityMinimum(t *testing.T) {
	m := NewModel(DefaultTerms())
	m.SetEquity(dec("5"))
	s := m.Read()

	assertDecimal(t, "4875", s.Salary)
	assertDecimal(t, "11", s.BuyoutPercent)
	assertDecimal(t, "23100", s.BuyoutAmount)
	assertDecimal(t, "25000", s.ProfitShare)
	assertDecimal(t, "83500", s.TotalYearlyCompensation)
}

func TestSalaryAndBuyoutDecreaseWithEquity(t *testing.T) {
	m := NewModel(DefaultTerms())

	var prev *Snapshot
	for e := 5; e <= 10; e++ {
		m.SetEquity(decimal.NewFromInt(int64(e)))
		s := m.Read()

		given := decimal.NewFromInt(int64(10 - e))
		assert.True(t, s.Salary.Equal(dec("4000").Add(given.Mul(dec("175")))), "salary at equity %d", e)
		assert.True(t, s.BuyoutPercent.Equal(dec("10").Add(given.Mul(dec("0.2")))), "buyout at equity %d", e)
		assert.True(t, s.BuyoutPercent.GreaterThanOrEqual(dec("10")))
		assert.True(t, s.BuyoutPercent.LessThanOrEqual(dec("11")))

		if prev != nil {
			assert.True(t, s.Salary.LessThan(prev.Salary), "salary must fall as equity rises")
			assert.True(t, s.BuyoutPercent.LessThan(prev.BuyoutPercent), "buyout must fall as equity rises")
		}
		prev = &s
	}
}

func TestSetSalaryInverse(t *testing.T) {
	m := NewModel(DefaultTerms())

	m.SetSalary(dec("4700"))
	assertDecimal(t, "6", m.Equity())
	assertDecimal(t, "4700", m.Read().Salary)

	// 4090 is closer to 4175 than to 4000
	m.SetSalary(dec("4090"))
	assertDecimal(t, "9", m.Equity())

	m.SetSalary(dec("4087.5"))
	assertDecimal(t, "9", m.Equity(), "ties round up")

	m.SetSalary(dec("100000"))
	assertDecimal(t, "5", m.Equity())

	m.SetSalary(dec("-100"))
	assertDecimal(t, "10", m.Equity())
}

func TestSetSalaryRoundTrip(t *testing.T) {
	terms := DefaultTerms()
	m := NewModel(terms)
	halfStep := terms.Salary.Step.Div(decimal.NewFromInt(2))

	for v := int64(3000); v <= 6000; v += 25 {
		want := decimal.NewFromInt(v)
		m.SetSalary(want)
		got := m.Read().Salary

		clamped := decimal.Min(decimal.Max(want, terms.Salary.Min), terms.Salary.Max)
		assert.True(t, terms.Salary.Contains(got), "salary %s off grid", got)
		assert.True(t, got.Sub(clamped).Abs().LessThanOrEqual(halfStep),
			"salary %s too far from requested %s", got, want)
	}
}

func TestValuationInvariant(t *testing.T) {
	m := NewModel(DefaultTerms())

	for _, e := range []string{"5", "7", "10"} {
		for _, p := range []string{"100000", "325000", "500000"} {
			m.SetEquity(dec(e))
			m.SetProfit(dec(p))
			assertDecimal(t, "210000", m.Read().Valuation)
		}
	}
}

func TestReadIsIdempotent(t *testing.T) {
	m := NewModel(DefaultTerms())
	m.SetEquity(dec("7"))
	m.SetProfit(dec("250000"))

	first := m.Read()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Read())
	}
}

func TestClamping(t *testing.T) {
	m := NewModel(DefaultTerms())

	m.SetEquity(dec("999"))
	assertDecimal(t, "10", m.Equity())

	m.SetProfit(dec("-1"))
	assertDecimal(t, "100000", m.Profit())

	m.SetProfit(dec("137000"))
	assertDecimal(t, "125000", m.Profit())
}

func TestNudge(t *testing.T) {
	m := NewModel(DefaultTerms())

	m.NudgeEquity(-2)
	assertDecimal(t, "8", m.Equity())

	m.NudgeSalary(1)
	assertDecimal(t, "7", m.Equity())
	assertDecimal(t, "4525", m.Read().Salary)

	m.NudgeSalary(-10)
	assertDecimal(t, "10", m.Equity())

	m.NudgeProfit(-3)
	assertDecimal(t, "425000", m.Profit())

	m.NudgeProfit(100)
	assertDecimal(t, "500000", m.Profit())
}

func TestResetKeepsTerms(t *testing.T) {
	terms := DefaultTerms()
	terms.Valuation = Valuation{BestSixMonthAverage: dec("30000"), LastSixMonthAverage: dec("20000")}
	m := NewModel(terms)

	m.NudgeEquity(-3)
	m.NudgeProfit(-4)
	m.Reset()

	assertDecimal(t, "10", m.Equity())
	assertDecimal(t, "500000", m.Profit())
	assertDecimal(t, "300000", m.Read().Valuation)
}

func TestDeriveIsPure(t *testing.T) {
	terms := DefaultTerms()
	a := terms.Derive(dec("6"), dec("200000"))
	b := terms.Derive(dec("6"), dec("200000"))

	assert.Equal(t, a, b)
	assertDecimal(t, "4700", a.Salary)
	assertDecimal(t, "10.8", a.BuyoutPercent)
	assertDecimal(t, "22680", a.BuyoutAmount)
	assertDecimal(t, "56400", a.YearlySalary)
	assertDecimal(t, "12000", a.ProfitShare)
	assertDecimal(t, "68400", a.TotalYearlyCompensation)
}

func TestCustomValuation(t *testing.T) {
	terms := DefaultTerms()
	terms.Valuation = Valuation{
		BestSixMonthAverage: dec("30000"),
		LastSixMonthAverage: dec("10000"),
	}
	m := NewModel(terms)

	assertDecimal(t, "240000", m.Read().Valuation)
	assertDecimal(t, "24000", m.Read().BuyoutAmount)
}

func TestPayoutAfter(t *testing.T) {
	terms := DefaultTerms()
	s := NewModel(terms).Read()

	early := s.PayoutAfter(5, terms.Vesting)
	assert.False(t, early.Eligible)
	assert.True(t, early.Amount.IsZero())

	onCliff := s.PayoutAfter(6, terms.Vesting)
	assert.True(t, onCliff.Eligible)
	assertDecimal(t, "21000", onCliff.Amount)
	assert.Equal(t, 30, onCliff.DueDays)
}

func TestApplyInputs(t *testing.T) {
	m := NewModel(DefaultTerms())

	m.Apply(ProfitChanged(dec("250000")))
	m.Apply(EquityChanged(dec("8")))
	assertDecimal(t, "250000", m.Profit())
	assertDecimal(t, "8", m.Equity())

	m.Apply(SalaryChanged(dec("4700")))
	assertDecimal(t, "6", m.Equity())

	m.Apply(Input{Field: Field(42), Value: dec("1")})
	assertDecimal(t, "6", m.Equity())
	assertDecimal(t, "250000", m.Profit())

	assert.Equal(t, "salary", FieldSalary.String())
	assert.Equal(t, "field(42)", Field(42).String())
}
