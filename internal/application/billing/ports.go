package billing

import (
	"context"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
	"github.com/salonpro/salonpro-api/internal/render"
)

// BillingTxRunner runs a function with an invoice repository bound to one
// transaction, so an invoice header and its lines commit or roll back
// together.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// ReceiptPainter executes a directive list against a document backend and
// returns the finished document bytes. Archive writes a copy named
// "<invoiceNumber>.pdf" into the painter's output directory; the directory is
// created once at painter construction, not per call.
type ReceiptPainter interface {
	Paint(ctx context.Context, profile render.Profile, directives []render.Directive) ([]byte, error)
	Archive(invoiceNumber string, pdf []byte) (path string, err error)
}

// SalesReportGenerator produces the A4 sales summary document for a period.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, period ReportPeriod, invoices []*entity.Invoice) ([]byte, error)
}
