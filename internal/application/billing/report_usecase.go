package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/money"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
)

// ReportPeriod is the inclusive-from, exclusive-to window of a sales report,
// plus the totals computed over it.
type ReportPeriod struct {
	From         time.Time
	To           time.Time
	InvoiceCount int
	GrossTotal   decimal.Decimal
}

// SalesReportUseCase summarizes billed invoices for a period as a PDF.
type SalesReportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   SalesReportGenerator
}

// NewSalesReportUseCase builds the use case.
func NewSalesReportUseCase(invoiceRepo repository.InvoiceRepository, generator SalesReportGenerator) *SalesReportUseCase {
	return &SalesReportUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// GenerateSalesReport collects invoices in [from, to) and renders the summary
// document. An empty window is valid and produces a report with zero rows.
func (uc *SalesReportUseCase) GenerateSalesReport(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	if !to.After(from) {
		return nil, "", fmt.Errorf("%w: report window must end after it starts", domain.ErrInvalidInput)
	}
	invoices, err := uc.invoiceRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, "", fmt.Errorf("sales report: list invoices: %w", err)
	}

	period := ReportPeriod{From: from, To: to, InvoiceCount: len(invoices)}
	gross := decimal.Zero
	for _, inv := range invoices {
		gross = gross.Add(inv.TotalPrice)
	}
	period.GrossTotal = money.Round2(gross)

	pdf, err := uc.generator.GenerateSalesReport(ctx, period, invoices)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	filename := fmt.Sprintf("sales_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdf, filename, nil
}
