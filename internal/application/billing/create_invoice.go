package billing

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/application/dto"
	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
)

// maxNumberAttempts bounds the retry loop for random invoice-number
// collisions. The deterministic appointment branch never retries.
const maxNumberAttempts = 5

// Policy carries the billing defaults read from configuration.
type Policy struct {
	DefaultGSTPercent decimal.Decimal
}

// CreateInvoiceUseCase validates a billing request, finalizes the draft and
// persists the result atomically (header plus lines in one transaction).
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	calc        *Calculator
	adapter     *AppointmentAdapter
	policy      Policy
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	calc *Calculator,
	adapter *AppointmentAdapter,
	policy Policy,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		calc:        calc,
		adapter:     adapter,
		policy:      policy,
	}
}

// CreateManual bills a hand-entered draft (walk-in customer).
func (uc *CreateInvoiceUseCase) CreateManual(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	draft := uc.draftFromRequest(in)
	inv, err := uc.finalizeAndStore(ctx, draft)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

// CreateFromAppointment bills an appointment record. The invoice number is
// derived from the appointment ID, so billing the same appointment twice
// surfaces domain.ErrDuplicateInvoiceNumber instead of a second invoice.
func (uc *CreateInvoiceUseCase) CreateFromAppointment(ctx context.Context, in dto.AppointmentBillRequest) (*dto.InvoiceResponse, error) {
	draft := uc.adapter.FromAppointment(in.ToEntity())
	inv, err := uc.finalizeAndStore(ctx, draft)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

// GetInvoice loads a persisted invoice by its number.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewInvoiceResponse(inv), nil
}

// finalizeAndStore runs the finalize pass and persists the result. A
// duplicate-number rejection on the random branch regenerates the candidate
// and tries again, bounded by maxNumberAttempts; a pre-assigned number is
// never regenerated.
func (uc *CreateInvoiceUseCase) finalizeAndStore(ctx context.Context, draft InvoiceDraft) (*entity.Invoice, error) {
	preassigned := draft.InvoiceNumber != ""
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		inv, err := uc.calc.Finalize(draft)
		if err != nil {
			return nil, err
		}
		err = uc.txRunner.RunBilling(ctx, func(repo repository.InvoiceRepository) error {
			return repo.Create(inv)
		})
		if err == nil {
			return inv, nil
		}
		if preassigned || !errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicateInvoiceNumber
}

// draftFromRequest maps the request body into a draft, applying the
// configured GST default where a line carries none.
func (uc *CreateInvoiceUseCase) draftFromRequest(in dto.CreateInvoiceRequest) InvoiceDraft {
	services := make([]entity.ServiceLine, 0, len(in.Services))
	for _, s := range in.Services {
		services = append(services, entity.ServiceLine{
			Name:            s.Name,
			Duration:        s.Duration,
			Staff:           s.Staff,
			Price:           s.Price,
			GSTPercent:      uc.gstOrDefault(s.GSTPercent),
			DiscountPercent: orZero(s.DiscountPercent),
		})
	}
	products := make([]entity.ProductLine, 0, len(in.Products))
	for _, p := range in.Products {
		products = append(products, entity.ProductLine{
			Name:            p.Name,
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			GSTPercent:      uc.gstOrDefault(p.GSTPercent),
			DiscountPercent: orZero(p.DiscountPercent),
		})
	}
	return InvoiceDraft{
		Customer: entity.CustomerInfo{
			Name:       in.Customer.Name,
			CustomerID: in.Customer.CustomerID,
			Phone:      in.Customer.Phone,
			Email:      in.Customer.Email,
			Gender:     in.Customer.Gender,
		},
		Services:              services,
		Products:              products,
		GlobalDiscountPercent: orZero(in.DiscountPercent),
		AdvanceAmount:         orZero(in.AdvanceAmount),
		PaymentMethod:         NormalizePaymentMethod(in.PaymentMethod),
		PaymentStatus:         in.PaymentStatus,
	}
}

func (uc *CreateInvoiceUseCase) gstOrDefault(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return uc.policy.DefaultGSTPercent
	}
	return *p
}

func orZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// NormalizePaymentMethod folds request casing into the canonical payment
// constants. Unknown values pass through unchanged so validation can reject
// them by name.
func NormalizePaymentMethod(m string) string {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "cash":
		return entity.PaymentCash
	case "upi":
		return entity.PaymentUPI
	case "card":
		return entity.PaymentCard
	default:
		return strings.TrimSpace(m)
	}
}
