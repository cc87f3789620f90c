package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// fakeReportGenerator records the period it was asked to summarize.
type fakeReportGenerator struct {
	lastPeriod billing.ReportPeriod
	lastCount  int
}

func (g *fakeReportGenerator) GenerateSalesReport(_ context.Context, period billing.ReportPeriod, invoices []*entity.Invoice) ([]byte, error) {
	g.lastPeriod = period
	g.lastCount = len(invoices)
	return []byte("%PDF-report"), nil
}

func TestGenerateSalesReport_SumsAndNamesFile(t *testing.T) {
	repo := newMemInvoiceRepo()
	mar := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo.byNumber["INV-1"] = &entity.Invoice{
		InvoiceNumber: "INV-1", TotalPrice: decimal.RequireFromString("525"), CreatedAt: mar,
	}
	repo.byNumber["INV-2"] = &entity.Invoice{
		InvoiceNumber: "INV-2", TotalPrice: decimal.RequireFromString("1420.25"), CreatedAt: mar.Add(24 * time.Hour),
	}
	// Outside the window, must not count.
	repo.byNumber["INV-3"] = &entity.Invoice{
		InvoiceNumber: "INV-3", TotalPrice: decimal.RequireFromString("9999"), CreatedAt: mar.AddDate(0, 1, 0),
	}
	gen := &fakeReportGenerator{}
	uc := billing.NewSalesReportUseCase(repo, gen)

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	pdf, filename, err := uc.GenerateSalesReport(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-report"), pdf)
	assert.Equal(t, "sales_20260301_20260401.pdf", filename)
	assert.Equal(t, 2, gen.lastCount)
	assert.Equal(t, "1945.25", gen.lastPeriod.GrossTotal.StringFixed(2))
}

func TestGenerateSalesReport_EmptyWindowIsValid(t *testing.T) {
	gen := &fakeReportGenerator{}
	uc := billing.NewSalesReportUseCase(newMemInvoiceRepo(), gen)

	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.GenerateSalesReport(context.Background(), from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, gen.lastCount)
	assert.Equal(t, "0.00", gen.lastPeriod.GrossTotal.StringFixed(2))
}

func TestGenerateSalesReport_InvertedWindowRejected(t *testing.T) {
	uc := billing.NewSalesReportUseCase(newMemInvoiceRepo(), &fakeReportGenerator{})

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := uc.GenerateSalesReport(context.Background(), from, from)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
