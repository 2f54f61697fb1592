package compensation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvertedRange = errors.New("min is greater than max")
	ErrNonPositive   = errors.New("step must be positive")
)

var half = decimal.NewFromFloat(0.5)

// Param is a bounded numeric domain. Legal values lie on the grid min + k*step, k >= 0,
// and never exceed max.
type Param struct {
	Min  decimal.Decimal `json:"min" yaml:"min"`
	Max  decimal.Decimal `json:"max" yaml:"max"`
	Step decimal.Decimal `json:"step" yaml:"step"`
}

// NewParam builds a Param from float inputs, the way config values arrive.
func NewParam(min, max, step float64) Param {
	return Param{
		Min:  decimal.NewFromFloat(min),
		Max:  decimal.NewFromFloat(max),
		Step: decimal.NewFromFloat(step),
	}
}

// Validate checks min <= max and step > 0.
func (p Param) Validate() error {
	if p.Min.GreaterThan(p.Max) {
		return fmt.Errorf("%w: %s > %s", ErrInvertedRange, p.Min, p.Max)
	}
	if !p.Step.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositive, p.Step)
	}
	return nil
}

// Steps returns the number of whole grid intervals between Min and Max.
func (p Param) Steps() int64 {
	if !p.Step.IsPositive() || p.Max.LessThan(p.Min) {
		return 0
	}
	return p.Max.Sub(p.Min).Div(p.Step).Floor().IntPart()
}

// Last returns the highest grid value that does not exceed Max.
func (p Param) Last() decimal.Decimal {
	return p.Min.Add(p.Step.Mul(decimal.NewFromInt(p.Steps())))
}

// Snap clamps v into range and rounds it to the nearest grid point.
func (p Param) Snap(v decimal.Decimal) decimal.Decimal {
	if v.LessThanOrEqual(p.Min) || !p.Step.IsPositive() {
		return p.Min
	}
	k := roundHalfUp(v.Sub(p.Min).Div(p.Step))
	if n := p.Steps(); k.GreaterThan(decimal.NewFromInt(n)) {
		k = decimal.NewFromInt(n)
	}
	return p.Min.Add(p.Step.Mul(k))
}

// Position reports where v sits inside the range, from 0 at Min to 1 at Max.
func (p Param) Position(v decimal.Decimal) float64 {
	span := p.Max.Sub(p.Min)
	if !span.IsPositive() {
		return 0
	}
	f, _ := v.Sub(p.Min).Div(span).Float64()
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Contains reports whether v is a legal grid value.
func (p Param) Contains(v decimal.Decimal) bool {
	return p.Snap(v).Equal(v)
}

// roundHalfUp rounds towards +inf on ties, so -0.5 becomes 0 and 2.5 becomes 3.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// Values lists every grid value from Min to Last.
func (p Param) Values() []decimal.Decimal {
	n := p.Steps()
	out := make([]decimal.Decimal, 0, n+1)
	for k := int64(0); k <= n; k++ {
		out = append(out, p.Min.Add(p.Step.Mul(decimal.NewFromInt(k))))
	}
	return out
}
