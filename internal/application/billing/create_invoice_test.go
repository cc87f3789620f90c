package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/application/dto"
	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

// memInvoiceRepo stores invoices keyed by number and rejects duplicates the
// way the PostgreSQL repository does.
type memInvoiceRepo struct {
	byNumber map[string]*entity.Invoice
	creates  int
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{byNumber: map[string]*entity.Invoice{}}
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	r.creates++
	if _, ok := r.byNumber[inv.InvoiceNumber]; ok {
		return domain.ErrDuplicateInvoiceNumber
	}
	r.byNumber[inv.InvoiceNumber] = inv
	return nil
}

func (r *memInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	return r.byNumber[number], nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.byNumber {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) ListByDateRange(from, to time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.byNumber {
		if !inv.CreatedAt.Before(from) && inv.CreatedAt.Before(to) {
			out = append(out, inv)
		}
	}
	return out, nil
}

// memTxRunner hands the same repository to the callback; there is no real
// transaction in unit tests.
type memTxRunner struct {
	repo *memInvoiceRepo
}

func (tr *memTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(tr.repo)
}

func newTestUseCase(repo *memInvoiceRepo, numbers ...string) *billing.CreateInvoiceUseCase {
	calc := billing.NewCalculatorWithClock(&seqSource{numbers: numbers}, testClock)
	return billing.NewCreateInvoiceUseCase(
		&memTxRunner{repo: repo},
		repo,
		calc,
		billing.NewAppointmentAdapter(),
		billing.Policy{DefaultGSTPercent: decimal.RequireFromString("5")},
	)
}

func manualRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Customer: dto.CustomerRequest{
			Name:  "Priya Sharma",
			Phone: "9876543210",
		},
		Services: []dto.ServiceItemRequest{{
			Name:  "Haircut",
			Price: decimal.RequireFromString("500"),
		}},
		PaymentMethod: "Cash",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateManual
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateManual_PersistsAndReturnsInvoice(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-1234567")

	resp, err := uc.CreateManual(context.Background(), manualRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-1234567", resp.InvoiceNumber)
	// 500 plus the configured 5% GST default
	assert.Equal(t, "525.00", resp.TotalPrice.StringFixed(2))
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod, "request casing is normalized")

	stored, err := repo.GetByNumber("INV-1234567")
	require.NoError(t, err)
	require.NotNil(t, stored, "the invoice must be persisted under its number")
}

func TestCreateManual_ExplicitGSTOverridesDefault(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-1234567")

	req := manualRequest()
	gst := decimal.RequireFromString("18")
	req.Services[0].GSTPercent = &gst

	resp, err := uc.CreateManual(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "590.00", resp.TotalPrice.StringFixed(2))
}

func TestCreateManual_ZeroGSTIsNotDefaulted(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-1234567")

	req := manualRequest()
	zero := decimal.Zero
	req.Services[0].GSTPercent = &zero

	resp, err := uc.CreateManual(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "500.00", resp.TotalPrice.StringFixed(2),
		"an explicit zero GST must not fall back to the configured default")
}

func TestCreateManual_RetriesOnDuplicateNumber(t *testing.T) {
	repo := newMemInvoiceRepo()
	// Seed the first candidate so the initial attempt collides.
	repo.byNumber["INV-1111111"] = &entity.Invoice{InvoiceNumber: "INV-1111111"}
	uc := newTestUseCase(repo, "INV-1111111", "INV-2222222")

	resp, err := uc.CreateManual(context.Background(), manualRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-2222222", resp.InvoiceNumber,
		"a collision on the random branch must draw a fresh candidate")
	assert.Equal(t, 2, repo.creates)
}

func TestCreateManual_GivesUpAfterBoundedAttempts(t *testing.T) {
	repo := newMemInvoiceRepo()
	repo.byNumber["INV-1111111"] = &entity.Invoice{InvoiceNumber: "INV-1111111"}
	// The source only ever returns the colliding number.
	uc := newTestUseCase(repo, "INV-1111111")

	_, err := uc.CreateManual(context.Background(), manualRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
	assert.Equal(t, 5, repo.creates, "the retry loop is bounded")
}

func TestCreateManual_ValidationErrorSurfaces(t *testing.T) {
	uc := newTestUseCase(newMemInvoiceRepo(), "INV-1234567")

	req := manualRequest()
	req.Customer.Phone = ""

	_, err := uc.CreateManual(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateFromAppointment
// ──────────────────────────────────────────────────────────────────────────────

func appointmentRequest() dto.AppointmentBillRequest {
	req := dto.AppointmentBillRequest{
		AppointmentID: "64f1a2b3",
		ServicePrice:  decimal.RequireFromString("1800"),
		PaymentMethod: "cash",
		DateTime:      time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
	req.User.Name = "Anita Desai"
	req.User.Phone = "9812345678"
	req.Service.Name = "Deep Tissue Massage"
	req.Employee.Name = "Ravi"
	return req
}

func TestCreateFromAppointment_DerivesNumberFromID(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-9999999")

	resp, err := uc.CreateFromAppointment(context.Background(), appointmentRequest())
	require.NoError(t, err)

	assert.Equal(t, "APP-64f1a2b3", resp.InvoiceNumber)
	assert.Equal(t, "64f1a2b3", resp.AppointmentID)
	assert.Equal(t, "15/03/2026", resp.BillingDate)
	// 1800 plus 5% GST from the adapter fallback
	assert.Equal(t, "1890.00", resp.TotalPrice.StringFixed(2))
}

func TestCreateFromAppointment_SecondBillIsRejectedNotRetried(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-9999999")

	_, err := uc.CreateFromAppointment(context.Background(), appointmentRequest())
	require.NoError(t, err)

	_, err = uc.CreateFromAppointment(context.Background(), appointmentRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber,
		"billing the same appointment twice must surface the duplicate, never a second invoice")
	assert.Equal(t, 2, repo.creates, "a pre-assigned number is never regenerated")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInvoice_NotFound(t *testing.T) {
	uc := newTestUseCase(newMemInvoiceRepo(), "INV-1234567")

	_, err := uc.GetInvoice(context.Background(), "INV-0000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoice_RoundTrip(t *testing.T) {
	repo := newMemInvoiceRepo()
	uc := newTestUseCase(repo, "INV-1234567")

	created, err := uc.CreateManual(context.Background(), manualRequest())
	require.NoError(t, err)

	got, err := uc.GetInvoice(context.Background(), created.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, got.InvoiceNumber)
	assert.True(t, created.TotalPrice.Equal(got.TotalPrice))
}
