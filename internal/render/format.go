package render

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// enIN groups digits the Indian way (1,52,250.00).
var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders a monetary value with the currency symbol and exactly
// two decimal digits, regardless of the stored precision.
func FormatAmount(symbol string, d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return symbol + enIN.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
