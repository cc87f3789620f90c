// Package money is the single rounding authority for all monetary math.
// Every derived amount in the billing engine goes through Round2; no other
// package rounds on its own.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports an input outside the valid monetary domain:
// non-positive quantity, negative unit price, or a percentage outside [0,100].
var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineTotal computes the total of a single line:
//
//	round2( quantity * unitPrice * (1 + gst/100) * (1 - discount/100) )
//
// The result is non-negative whenever the inputs are valid. Services pass
// quantity 1.
func LineTotal(quantity int64, unitPrice, gstPercent, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if !validPercent(gstPercent) || !validPercent(discountPercent) {
		return decimal.Zero, ErrInvalidAmount
	}
	gross := decimal.NewFromInt(quantity).Mul(unitPrice)
	gross = gross.Mul(decimal.NewFromInt(1).Add(gstPercent.Div(hundred)))
	gross = gross.Mul(decimal.NewFromInt(1).Sub(discountPercent.Div(hundred)))
	return Round2(gross), nil
}

// ApplyGlobalDiscount reduces a subtotal by a percentage and folds in the
// advance amount. The advance is additive: it represents a prior deposit shown
// as part of the displayed total, and callers must not "fix" the sign.
func ApplyGlobalDiscount(subTotal, discountPercent, advance decimal.Decimal) (decimal.Decimal, error) {
	if !validPercent(discountPercent) {
		return decimal.Zero, ErrInvalidAmount
	}
	if advance.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	total := subTotal.Mul(decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))).Add(advance)
	return Round2(total), nil
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
