package billing

import (
	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// InvoiceDraft is an invoice-shaped input before totals are derived. Any
// pre-filled SubTotal/TotalPrice on the source (appointments carry a scratch
// servicePrice+roomPrice sum) is ignored: Finalize always recomputes from the
// lines alone.
type InvoiceDraft struct {
	Customer entity.CustomerInfo
	Services []entity.ServiceLine
	Products []entity.ProductLine

	GlobalDiscountPercent decimal.Decimal
	AdvanceAmount         decimal.Decimal
	PaymentMethod         string
	PaymentStatus         string

	// Optional; assigned at finalization when empty.
	InvoiceNumber string
	BillingDate   string
	BillingTime   string

	// Set only for appointment-derived drafts.
	AppointmentID string
	Room          string
}
