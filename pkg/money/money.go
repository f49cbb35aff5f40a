// Package money formats decimal amounts as Canadian dollars for the web
// frontend. Amounts always render with two decimal places.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-CA"))

// FormatCAD renders an amount like "$13,680.00".
func FormatCAD(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return "$" + printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// FromString parses an exact decimal amount, falling back to zero on
// malformed input. Form fields default to empty, so bad input degrades
// rather than failing.
func FromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
