package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// AdapterDefaults is the fallback policy applied when an appointment arrives
// with incomplete data. Incomplete upstream data is a data-quality fact, not
// an error: every field has a documented default so billing never blocks on a
// half-filled appointment. Kept in one table so the policy is auditable and
// testable on its own.
type AdapterDefaults struct {
	ServiceName   string
	Duration      string
	Staff         string
	CustomerName  string
	CustomerPhone string
	GSTPercent    decimal.Decimal
}

// DefaultAdapterDefaults returns the stock fallback table.
func DefaultAdapterDefaults() AdapterDefaults {
	return AdapterDefaults{
		ServiceName:   "Appointment Service",
		Duration:      "60 mins",
		Staff:         "Staff",
		CustomerName:  "Customer",
		CustomerPhone: "0000000000",
		GSTPercent:    decimal.NewFromInt(5),
	}
}

// AppointmentAdapter maps an appointment record into the invoice draft shape.
// The draft is then finalized by the Calculator like any other draft.
type AppointmentAdapter struct {
	defaults AdapterDefaults
	now      func() time.Time
}

// NewAppointmentAdapter builds the adapter with the stock fallback table.
func NewAppointmentAdapter() *AppointmentAdapter {
	return &AppointmentAdapter{defaults: DefaultAdapterDefaults(), now: time.Now}
}

// NewAppointmentAdapterWithDefaults allows a custom fallback table and clock.
func NewAppointmentAdapterWithDefaults(d AdapterDefaults, now func() time.Time) *AppointmentAdapter {
	return &AppointmentAdapter{defaults: d, now: now}
}

// FromAppointment produces an invoice draft from an appointment snapshot.
// Exactly one synthetic service line, never any products. Deterministic for
// the same snapshot as long as the appointment has an ID; the timestamp-based
// customer-ID fallback for ID-less appointments is a debug aid and is not
// stable across calls.
//
// Any TotalPrice the scheduler stored on the appointment is scratch; Finalize
// recomputes everything from the single line.
func (a *AppointmentAdapter) FromAppointment(appt entity.Appointment) InvoiceDraft {
	line := entity.ServiceLine{
		Name:            fallback(appt.Service.Name, a.defaults.ServiceName),
		Duration:        a.defaults.Duration,
		Staff:           fallback(appt.Employee.Name, a.defaults.Staff),
		Price:           appt.ServicePrice, // zero when the scheduler recorded none
		GSTPercent:      a.defaults.GSTPercent,
		DiscountPercent: decimal.Zero,
	}
	if len(appt.Service.Tiers) > 0 && appt.Service.Tiers[0].DurationMinutes > 0 {
		line.Duration = fmt.Sprintf("%d mins", appt.Service.Tiers[0].DurationMinutes)
	}

	draft := InvoiceDraft{
		Customer: entity.CustomerInfo{
			Name:       fallback(appt.User.Name, a.defaults.CustomerName),
			CustomerID: a.customerID(appt),
			Phone:      fallback(appt.User.Phone, a.defaults.CustomerPhone),
			Email:      appt.User.Email,
			Gender:     entity.GenderOther, // appointments do not track gender
		},
		Services:      []entity.ServiceLine{line},
		Products:      nil, // appointments carry no product purchases
		PaymentMethod: mapPaymentMethod(appt.PaymentMethod),
		PaymentStatus: appt.PaymentStatus,
		AppointmentID: appt.ID,
		Room:          appt.Room.Name,
	}
	if appt.ID != "" {
		draft.InvoiceNumber = NumberForAppointment(appt.ID)
	}
	if !appt.DateTime.IsZero() {
		draft.BillingDate = appt.DateTime.Format(billingDateFormat)
		draft.BillingTime = appt.DateTime.Format(billingTimeFormat)
	}
	return draft
}

// customerID prefers the linked user's ID, then a deterministic tag from the
// appointment ID, and as a last resort a timestamp tag (non-deterministic,
// never relied on for idempotent re-runs).
func (a *AppointmentAdapter) customerID(appt entity.Appointment) string {
	if appt.User.ID != "" {
		return appt.User.ID
	}
	if appt.ID != "" {
		return PrefixAppointment + "-" + appt.ID
	}
	return fmt.Sprintf("CUST-%d", a.now().UnixNano())
}

// mapPaymentMethod is the one canonical mapping from scheduler payment
// vocabulary to invoice payment methods: "cash" stays cash, "card" stays
// card, everything else (online, upi, empty) is treated as UPI.
func mapPaymentMethod(m string) string {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "cash":
		return entity.PaymentCash
	case "card":
		return entity.PaymentCard
	default:
		return entity.PaymentUPI
	}
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
