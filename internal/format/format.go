// Package format renders derived offer values for people to read.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale   = "lt"
	DefaultCurrency = "€"
)

// Formatter renders amounts with locale grouping and a trailing currency symbol.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// New builds a formatter for a BCP 47 locale tag. Unknown tags fall back to the default locale.
func New(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Lithuanian
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Default uses lt with a euro sign.
func Default() *Formatter {
	return New(DefaultLocale, DefaultCurrency)
}

// Money renders a whole currency amount, e.g. "210 000 €". Fractions are rounded away.
func (f *Formatter) Money(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", d.Round(0).IntPart()) + " " + f.currency
}

// Number renders a whole number with grouping and no currency.
func (f *Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", d.Round(0).IntPart())
}

// Percent renders one decimal place with a point in every locale, e.g. "10.8%".
func (f *Formatter) Percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// WholePercent renders an integer percentage, e.g. "7%".
func (f *Formatter) WholePercent(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", d.Round(0).IntPart()) + "%"
}

// Plain replaces locale specific spaces with ASCII spaces. Useful for logs and tests.
func Plain(s string) string {
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}
