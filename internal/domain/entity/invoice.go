package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
	PaymentCard = "Card"
)

// Customer genders. Appointments do not track gender, so appointment-derived
// invoices always carry GenderOther.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// CustomerInfo is the customer snapshot embedded in an invoice. Invoices keep
// their own copy so a later edit to the customer record never changes an
// already issued bill.
type CustomerInfo struct {
	Name       string
	CustomerID string
	Phone      string
	Email      string
	Gender     string
}

// Invoice is a finalized bill. It is produced once by the billing calculator
// and never mutated afterwards; a correction runs a new draft through the
// calculator and yields a new value.
type Invoice struct {
	ID            string
	InvoiceNumber string // unique, immutable once assigned
	AppointmentID string // set only for appointment-derived invoices

	Customer CustomerInfo
	Services []ServiceLine // rendered order: services first,
	Products []ProductLine // then products

	GlobalDiscountPercent decimal.Decimal
	AdvanceAmount         decimal.Decimal // prior deposit, folded into TotalPrice additively
	PaymentMethod         string
	PaymentStatus         string

	SubTotal   decimal.Decimal // round2(sum of line totals)
	TotalPrice decimal.Decimal // round2(SubTotal*(1-discount/100) + AdvanceAmount)

	BillingDate string // "02/01/2006"
	BillingTime string // 24h "15:04"
	Room        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
