package billing

import (
	"fmt"
	"math/rand"
)

// Invoice number prefixes. Manual bills get "INV", appointment-derived bills
// get "APP".
const (
	PrefixManual      = "INV"
	PrefixAppointment = "APP"
)

// NumberSource produces candidate invoice numbers. The random implementation
// does NOT guarantee global uniqueness: it returns a candidate, and the
// persistence layer enforces uniqueness (rejecting with
// domain.ErrDuplicateInvoiceNumber so the caller can retry with a fresh
// candidate). Injectable so tests can pin the sequence.
type NumberSource interface {
	Generate(prefix string) string
}

// RandomNumberSource draws a uniform 7-digit suffix in [1000000, 9999999].
type RandomNumberSource struct{}

// NewRandomNumberSource builds the default source.
func NewRandomNumberSource() *RandomNumberSource { return &RandomNumberSource{} }

// Generate returns "<prefix>-<7 digits>".
func (s *RandomNumberSource) Generate(prefix string) string {
	if prefix == "" {
		prefix = PrefixManual
	}
	n := rand.Int63n(9_000_000) + 1_000_000
	return fmt.Sprintf("%s-%d", prefix, n)
}

// NumberForAppointment derives the invoice number for an appointment bill.
// Deterministic: the same appointment always maps to the same number, which
// gives a 1:1 appointment-to-invoice mapping.
func NumberForAppointment(appointmentID string) string {
	return PrefixAppointment + "-" + appointmentID
}
