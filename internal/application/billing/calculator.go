package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/domain/money"
)

// Display formats for billing date and time. Time is kept 24h internally;
// the receipt layer decides presentation.
const (
	billingDateFormat = "02/01/2006"
	billingTimeFormat = "15:04"
)

// Calculator turns an InvoiceDraft into a finalized Invoice. It is a pure
// recompute-from-scratch pass: every line total, the subtotal and the grand
// total are derived in full on every call, never patched incrementally.
//
// The only two non-determinism points are the injected clock (billing
// date/time when the draft has none) and the number source (random suffix
// when the draft has no number). Calling Finalize twice on the same draft
// reproduces identical totals; number and time are re-derived each call.
type Calculator struct {
	numbers NumberSource
	now     func() time.Time
}

// NewCalculator builds a calculator with the given number source.
func NewCalculator(numbers NumberSource) *Calculator {
	return &Calculator{numbers: numbers, now: time.Now}
}

// NewCalculatorWithClock is NewCalculator with a fixed clock, for tests.
func NewCalculatorWithClock(numbers NumberSource, now func() time.Time) *Calculator {
	return &Calculator{numbers: numbers, now: now}
}

// Finalize validates the draft, computes all derived fields and returns a new
// finalized Invoice value. The draft is not mutated. Any malformed line
// rejects the whole call with domain.ErrInvalidLineItem; there is no partial
// finalization.
func (c *Calculator) Finalize(draft InvoiceDraft) (*entity.Invoice, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	services := make([]entity.ServiceLine, len(draft.Services))
	products := make([]entity.ProductLine, len(draft.Products))
	subTotal := decimal.Zero

	for i, s := range draft.Services {
		total, err := money.LineTotal(1, s.Price, s.GSTPercent, s.DiscountPercent)
		if err != nil {
			return nil, fmt.Errorf("%w: service %q: %v", domain.ErrInvalidLineItem, s.Name, err)
		}
		services[i] = s
		services[i].Total = total
		subTotal = subTotal.Add(total)
	}
	for i, p := range draft.Products {
		total, err := money.LineTotal(p.Quantity, p.UnitPrice, p.GSTPercent, p.DiscountPercent)
		if err != nil {
			return nil, fmt.Errorf("%w: product %q: %v", domain.ErrInvalidLineItem, p.Name, err)
		}
		products[i] = p
		products[i].Total = total
		subTotal = subTotal.Add(total)
	}
	subTotal = money.Round2(subTotal)

	totalPrice, err := money.ApplyGlobalDiscount(subTotal, draft.GlobalDiscountPercent, draft.AdvanceAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLineItem, err)
	}

	now := c.now()
	billingDate := draft.BillingDate
	if billingDate == "" {
		billingDate = now.Format(billingDateFormat)
	}
	billingTime := draft.BillingTime
	if billingTime == "" {
		billingTime = now.Format(billingTimeFormat)
	}
	number := draft.InvoiceNumber
	if number == "" {
		number = c.numbers.Generate(PrefixManual)
	}

	return &entity.Invoice{
		ID:                    uuid.New().String(),
		InvoiceNumber:         number,
		AppointmentID:         draft.AppointmentID,
		Customer:              draft.Customer,
		Services:              services,
		Products:              products,
		GlobalDiscountPercent: draft.GlobalDiscountPercent,
		AdvanceAmount:         draft.AdvanceAmount,
		PaymentMethod:         draft.PaymentMethod,
		PaymentStatus:         draft.PaymentStatus,
		SubTotal:              subTotal,
		TotalPrice:            totalPrice,
		BillingDate:           billingDate,
		BillingTime:           billingTime,
		Room:                  draft.Room,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}

// validateDraft surfaces missing required fields before any monetary
// computation begins. Appointment drafts arrive already defaulted by the
// adapter and pass unchanged.
func validateDraft(draft InvoiceDraft) error {
	if draft.Customer.Name == "" {
		return fmt.Errorf("%w: customer name", domain.ErrMissingRequiredField)
	}
	if draft.Customer.Phone == "" {
		return fmt.Errorf("%w: customer phone", domain.ErrMissingRequiredField)
	}
	switch draft.PaymentMethod {
	case entity.PaymentCash, entity.PaymentUPI, entity.PaymentCard:
	case "":
		return fmt.Errorf("%w: payment method", domain.ErrMissingRequiredField)
	default:
		return fmt.Errorf("%w: payment method %q", domain.ErrInvalidInput, draft.PaymentMethod)
	}
	if len(draft.Services) == 0 && len(draft.Products) == 0 {
		return fmt.Errorf("%w: at least one line item", domain.ErrMissingRequiredField)
	}
	for _, s := range draft.Services {
		if s.Name == "" {
			return fmt.Errorf("%w: service name", domain.ErrInvalidLineItem)
		}
	}
	for _, p := range draft.Products {
		if p.Name == "" {
			return fmt.Errorf("%w: product name", domain.ErrInvalidLineItem)
		}
	}
	return nil
}
