package repository

import (
	"time"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices and their lines.
// Create must enforce invoice-number uniqueness and return
// domain.ErrDuplicateInvoiceNumber on a collision; the number generator's
// random branch relies on that signal to retry.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByNumber(number string) (*entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	// ListByDateRange returns invoices created in [from, to), oldest first.
	ListByDateRange(from, to time.Time) ([]*entity.Invoice, error)
}
