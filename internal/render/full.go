package render

import (
	"fmt"
	"time"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// Full A4 layout: proportional fonts, sectioned details, a two-column payment
// summary table and a diagonal watermark. The watermark draw is bracketed by
// exactly one Rotate/RotateReset pair so no later directive inherits the
// rotation.
const (
	fullMargin = 20.0
	fullCenter = a4PageW / 2
	fullRight  = a4PageW - fullMargin
	fullFont   = "Helvetica"
)

var (
	accentColor = Color{R: 136, G: 14, B: 79} // deep plum
	mutedColor  = Color{R: 100, G: 100, B: 100}
)

func renderFull(inv *entity.Invoice, b Branding) []Directive {
	s := &sheet{y: 22}

	// Branded header
	s.text(fullCenter, b.SalonName, fullFont, 22, bold, centered, colored(accentColor))
	s.down(8)
	if b.Tagline != "" {
		s.text(fullCenter, b.Tagline, fullFont, 10, centered, colored(mutedColor))
		s.down(6)
	}
	s.rule(fullMargin, fullRight)
	s.down(10)

	// Document title and identity
	s.text(fullCenter, "INVOICE", fullFont, 14, bold, centered)
	s.down(7)
	s.text(fullCenter, inv.InvoiceNumber, fullFont, 12, bold, centered)
	s.down(6)
	s.text(fullCenter, longFormDate(inv.BillingDate), fullFont, 10, centered, colored(mutedColor))
	s.down(12)

	// Customer details
	s.text(fullMargin, "CUSTOMER DETAILS", fullFont, 11, bold, colored(accentColor))
	s.down(6)
	s.text(fullMargin, "Name: "+inv.Customer.Name, fullFont, 10)
	s.down(5)
	if inv.Customer.Email != "" {
		s.text(fullMargin, "Email: "+inv.Customer.Email, fullFont, 10)
		s.down(5)
	}
	s.text(fullMargin, "Phone: "+inv.Customer.Phone, fullFont, 10)
	s.down(10)

	// Service details
	s.text(fullMargin, "SERVICE DETAILS", fullFont, 11, bold, colored(accentColor))
	s.down(6)
	for _, svc := range inv.Services {
		line := svc.Name
		if svc.Duration != "" {
			line = fmt.Sprintf("%s (%s)", svc.Name, svc.Duration)
		}
		s.text(fullMargin, line, fullFont, 10)
		s.down(5)
	}
	for _, p := range inv.Products {
		s.text(fullMargin, fmt.Sprintf("%s x%d", p.Name, p.Quantity), fullFont, 10)
		s.down(5)
	}
	s.down(5)

	// Payment summary table
	s.text(fullMargin, "PAYMENT SUMMARY", fullFont, 11, bold, colored(accentColor))
	s.down(6)
	s.text(fullMargin, "Description", fullFont, 10, bold)
	s.text(fullRight, "Amount", fullFont, 10, bold, rightAligned)
	s.down(2)
	s.rule(fullMargin, fullRight)
	s.down(5)
	for _, svc := range inv.Services {
		s.text(fullMargin, svc.Name, fullFont, 10)
		s.text(fullRight, FormatAmount(b.CurrencySymbol, svc.Total), fullFont, 10, rightAligned)
		s.down(5)
	}
	for _, p := range inv.Products {
		s.text(fullMargin, fmt.Sprintf("%s x%d", p.Name, p.Quantity), fullFont, 10)
		s.text(fullRight, FormatAmount(b.CurrencySymbol, p.Total), fullFont, 10, rightAligned)
		s.down(5)
	}
	s.text(fullMargin, "Subtotal", fullFont, 10)
	s.text(fullRight, FormatAmount(b.CurrencySymbol, inv.SubTotal), fullFont, 10, rightAligned)
	s.down(5)
	if inv.GlobalDiscountPercent.IsPositive() {
		s.text(fullMargin, fmt.Sprintf("Discount (%s%%)", inv.GlobalDiscountPercent.String()), fullFont, 10)
		s.text(fullRight, "-"+FormatAmount(b.CurrencySymbol, inv.SubTotal.Sub(inv.TotalPrice.Sub(inv.AdvanceAmount))), fullFont, 10, rightAligned)
		s.down(5)
	}
	if inv.AdvanceAmount.IsPositive() {
		s.text(fullMargin, "Advance", fullFont, 10)
		s.text(fullRight, FormatAmount(b.CurrencySymbol, inv.AdvanceAmount), fullFont, 10, rightAligned)
		s.down(5)
	}
	s.down(1)
	s.rule(fullMargin, fullRight)
	s.down(5)
	s.text(fullMargin, "Total", fullFont, 11, bold)
	s.text(fullRight, FormatAmount(b.CurrencySymbol, inv.TotalPrice), fullFont, 11, bold, rightAligned)
	s.down(6)
	s.text(fullMargin, "Paid via "+inv.PaymentMethod, fullFont, 10, colored(mutedColor))
	s.down(14)

	// Footer contact lines
	if b.Address != "" {
		s.text(fullCenter, b.Address, fullFont, 9, centered, colored(mutedColor))
		s.down(4.5)
	}
	contact := b.Phone
	if b.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += b.Email
	}
	if contact != "" {
		s.text(fullCenter, contact, fullFont, 9, centered, colored(mutedColor))
		s.down(4.5)
	}

	// Watermark: drawn last, low near the page foot so it stays clear of the
	// payment table, inside a scoped rotate pair.
	watermark := b.WatermarkText
	if watermark == "" {
		watermark = b.SalonName
	}
	s.add(Directive{Kind: KindRotate, Angle: -45, X: fullCenter, Y: 235})
	s.add(Directive{
		Kind:  KindText,
		Text:  watermark,
		X:     fullCenter,
		Y:     235,
		Font:  fullFont,
		Size:  52,
		Bold:  true,
		Align: AlignCenter,
		Color: Color{R: 180, G: 180, B: 180},
		Alpha: 0.08,
	})
	s.add(Directive{Kind: KindRotateReset})

	return s.out
}

// longFormDate expands the stored billing date ("02/01/2006") into its
// long form; the raw string passes through when it does not parse.
func longFormDate(d string) string {
	t, err := time.Parse("02/01/2006", d)
	if err != nil {
		return d
	}
	return t.Format("Monday, 02 January 2006")
}
