package render

import (
	"fmt"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// Compact thermal layout: 80mm roll, monospaced font, centered header and
// footer. Directive order is fixed:
//
//	┌──────────────────────────────┐
//	│         SALON NAME           │  centered title
//	│      appointment receipt     │  centered subtitle
//	│ ---------------------------- │
//	│ Receipt No / customer /      │  metadata block
//	│ phone / room / date / time   │
//	│ ---------------------------- │
//	│ SERVICE                      │
//	│ 1. name / duration / staff   │  numbered service block
//	│ ---------------------------- │
//	│ price lines, subtotal,       │
//	│ TOTAL (underlined)           │
//	│ payment method + status      │
//	│      thank-you line          │
//	│ ---------------------------- │
//	└──────────────────────────────┘
const (
	compactMargin = 5.0
	compactCenter = compactPageW / 2
	compactRight  = compactPageW - compactMargin
	compactFont   = "Courier"
)

func renderCompact(inv *entity.Invoice, b Branding) []Directive {
	s := &sheet{y: 10}

	// Header
	s.text(compactCenter, b.SalonName, compactFont, 11, bold, centered)
	s.down(5)
	s.text(compactCenter, "Appointment Receipt", compactFont, 8, centered)
	s.down(4)
	s.rule(compactMargin, compactRight)
	s.down(5)

	// Metadata block
	meta := [][2]string{
		{"Receipt No", inv.InvoiceNumber},
		{"Customer", inv.Customer.Name},
		{"Phone", inv.Customer.Phone},
	}
	if inv.AppointmentID != "" {
		meta = append(meta, [2]string{"Appointment", inv.AppointmentID})
	}
	if inv.Room != "" {
		meta = append(meta, [2]string{"Room", inv.Room})
	}
	meta = append(meta,
		[2]string{"Date", inv.BillingDate},
		[2]string{"Time", inv.BillingTime},
	)
	for _, kv := range meta {
		s.text(compactMargin, kv[0]+":", compactFont, 8)
		s.text(compactRight, kv[1], compactFont, 8, rightAligned)
		s.down(4)
	}
	s.rule(compactMargin, compactRight)
	s.down(5)

	// Service block
	s.text(compactMargin, "SERVICE", compactFont, 9, bold)
	s.down(4.5)
	for i, svc := range inv.Services {
		s.text(compactMargin, fmt.Sprintf("%d. %s", i+1, svc.Name), compactFont, 8, bold)
		s.down(4)
		if svc.Duration != "" {
			s.text(compactMargin+3, "Duration: "+svc.Duration, compactFont, 7.5)
			s.down(3.5)
		}
		if svc.Staff != "" {
			s.text(compactMargin+3, "Staff: "+svc.Staff, compactFont, 7.5)
			s.down(3.5)
		}
	}
	for _, p := range inv.Products {
		s.text(compactMargin, fmt.Sprintf("%s x%d", p.Name, p.Quantity), compactFont, 8)
		s.down(4)
	}
	s.rule(compactMargin, compactRight)
	s.down(5)

	// Price lines
	for _, svc := range inv.Services {
		s.text(compactMargin, svc.Name, compactFont, 8)
		s.text(compactRight, FormatAmount(b.CurrencySymbol, svc.Total), compactFont, 8, rightAligned)
		s.down(4)
	}
	for _, p := range inv.Products {
		s.text(compactMargin, p.Name, compactFont, 8)
		s.text(compactRight, FormatAmount(b.CurrencySymbol, p.Total), compactFont, 8, rightAligned)
		s.down(4)
	}
	s.text(compactMargin, "Subtotal", compactFont, 8)
	s.text(compactRight, FormatAmount(b.CurrencySymbol, inv.SubTotal), compactFont, 8, rightAligned)
	s.down(4.5)
	s.text(compactMargin, "TOTAL", compactFont, 9, bold)
	s.text(compactRight, FormatAmount(b.CurrencySymbol, inv.TotalPrice), compactFont, 9, bold, underline, rightAligned)
	s.down(6)

	// Payment
	s.text(compactMargin, "Paid via: "+inv.PaymentMethod, compactFont, 8)
	s.down(4)
	if inv.PaymentStatus != "" {
		s.text(compactMargin, "Status: "+inv.PaymentStatus, compactFont, 8)
		s.down(4)
	}
	s.down(2)

	// Footer
	s.text(compactCenter, "Thank you for visiting!", compactFont, 8, centered)
	s.down(4)
	s.rule(compactMargin, compactRight)

	return s.out
}
