package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment is the read model handed over by the scheduling side. The
// billing engine never writes appointments; it only adapts them into invoice
// drafts. Nested references arrive denormalized because the scheduler owns
// them.
type Appointment struct {
	ID       string
	User     AppointmentUser
	Service  AppointmentService
	Room     AppointmentRoom
	Employee AppointmentEmployee

	ServicePrice decimal.Decimal
	RoomPrice    decimal.Decimal
	TotalPrice   decimal.Decimal // scratch value from the scheduler, recomputed at finalization

	PaymentMethod string // scheduler vocabulary: "cash", "online", ...
	PaymentStatus string
	DateTime      time.Time
}

// AppointmentUser is the customer as the scheduler knows them.
type AppointmentUser struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// AppointmentService carries the booked service with its pricing tiers.
type AppointmentService struct {
	ID    string
	Name  string
	Tiers []PricingTier
}

// PricingTier is one duration/price option of a service.
type PricingTier struct {
	DurationMinutes int
	Price           decimal.Decimal
}

// AppointmentRoom is the room or station assigned to the appointment.
type AppointmentRoom struct {
	ID   string
	Name string
}

// AppointmentEmployee is the staff member assigned to the appointment.
type AppointmentEmployee struct {
	ID   string
	Name string
}
