package compensation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names the adjustable quantity an input event targets.
type Field int

const (
	FieldEquity Field = iota
	FieldProfit
	FieldSalary
)

func (f Field) String() string {
	switch f {
	case FieldEquity:
		return "equity"
	case FieldProfit:
		return "profit"
	case FieldSalary:
		return "salary"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Input is a change event coming from a slider.
type Input struct {
	Field Field
	Value decimal.Decimal
}

func EquityChanged(v decimal.Decimal) Input { return Input{Field: FieldEquity, Value: v} }
func ProfitChanged(v decimal.Decimal) Input { return Input{Field: FieldProfit, Value: v} }
func SalaryChanged(v decimal.Decimal) Input { return Input{Field: FieldSalary, Value: v} }

// Apply routes an input event to its setter. Unknown fields are ignored.
func (m *Model) Apply(in Input) {
	switch in.Field {
	case FieldEquity:
		m.SetEquity(in.Value)
	case FieldProfit:
		m.SetProfit(in.Value)
	case FieldSalary:
		m.SetSalary(in.Value)
	}
}
