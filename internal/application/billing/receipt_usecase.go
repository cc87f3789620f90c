package billing

import (
	"context"
	"fmt"

	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
	"github.com/salonpro/salonpro-api/internal/render"
)

// ReceiptUseCase turns a persisted invoice into a printable receipt document.
//
// Returns:
//   - (pdfBytes, filename, nil)   on success; filename is "<number>.pdf".
//   - domain.ErrNotFound          when the invoice does not exist.
//   - domain.ErrRenderFailure     wrapped, when the painter fails mid-draw.
//     The painter owns any partial-file cleanup.
type ReceiptUseCase struct {
	invoiceRepo repository.InvoiceRepository
	painter     ReceiptPainter
	branding    render.Branding
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(invoiceRepo repository.InvoiceRepository, painter ReceiptPainter, branding render.Branding) *ReceiptUseCase {
	return &ReceiptUseCase{invoiceRepo: invoiceRepo, painter: painter, branding: branding}
}

// DownloadReceipt loads the invoice, lays it out for the profile and paints
// the document. A copy is archived under the painter's output directory.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, invoiceNumber string, profile render.Profile) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByNumber(invoiceNumber)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	directives := render.Render(inv, profile, uc.branding)

	pdfBytes, err = uc.painter.Paint(ctx, profile, directives)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	if _, err := uc.painter.Archive(inv.InvoiceNumber, pdfBytes); err != nil {
		return nil, "", fmt.Errorf("%w: archive: %v", domain.ErrRenderFailure, err)
	}

	return pdfBytes, inv.InvoiceNumber + ".pdf", nil
}
