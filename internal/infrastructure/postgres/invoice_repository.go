package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header and all its lines. The unique index on
// invoice_number is the uniqueness authority for invoice numbers; a collision
// surfaces as domain.ErrDuplicateInvoiceNumber so the caller can retry the
// random-number branch. Call inside a transaction so header and lines commit
// together.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	const insertHeader = `
		INSERT INTO invoices (
			id, invoice_number, appointment_id,
			customer_name, customer_id, customer_phone, customer_email, customer_gender,
			discount_percent, advance_amount, payment_method, payment_status,
			sub_total, total_price, billing_date, billing_time, room,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`
	_, err := r.q.Exec(context.Background(), insertHeader,
		inv.ID, inv.InvoiceNumber, nullIfEmpty(inv.AppointmentID),
		inv.Customer.Name, nullIfEmpty(inv.Customer.CustomerID), inv.Customer.Phone,
		nullIfEmpty(inv.Customer.Email), inv.Customer.Gender,
		inv.GlobalDiscountPercent, inv.AdvanceAmount, inv.PaymentMethod, nullIfEmpty(inv.PaymentStatus),
		inv.SubTotal, inv.TotalPrice, inv.BillingDate, inv.BillingTime, nullIfEmpty(inv.Room),
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateInvoiceNumber, inv.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	const insertService = `
		INSERT INTO invoice_services (id, invoice_id, position, name, duration, staff, price, gst_percent, discount_percent, total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	for i, s := range inv.Services {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := r.q.Exec(context.Background(), insertService,
			id, inv.ID, i, s.Name, nullIfEmpty(s.Duration), nullIfEmpty(s.Staff),
			s.Price, s.GSTPercent, s.DiscountPercent, s.Total,
		); err != nil {
			return fmt.Errorf("insert invoice service: %w", err)
		}
	}

	const insertProduct = `
		INSERT INTO invoice_products (id, invoice_id, position, name, quantity, unit_price, gst_percent, discount_percent, total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	for i, p := range inv.Products {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := r.q.Exec(context.Background(), insertProduct,
			id, inv.ID, i, p.Name, p.Quantity,
			p.UnitPrice, p.GSTPercent, p.DiscountPercent, p.Total,
		); err != nil {
			return fmt.Errorf("insert invoice product: %w", err)
		}
	}
	return nil
}

// GetByNumber loads a full invoice by its invoice number.
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	return r.getByField("invoice_number", number)
}

// GetByID loads a full invoice by its internal ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getByField("id", id)
}

func (r *InvoiceRepo) getByField(field, value string) (*entity.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT id, invoice_number, appointment_id,
		       customer_name, customer_id, customer_phone, customer_email, customer_gender,
		       discount_percent, advance_amount, payment_method, payment_status,
		       sub_total, total_price, billing_date, billing_time, room,
		       created_at, updated_at
		FROM invoices WHERE %s = $1`, field)
	inv, err := r.scanInvoice(r.q.QueryRow(context.Background(), query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadLines(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListByDateRange returns invoices created in [from, to), oldest first, with
// their lines.
func (r *InvoiceRepo) ListByDateRange(from, to time.Time) ([]*entity.Invoice, error) {
	const query = `
		SELECT id, invoice_number, appointment_id,
		       customer_name, customer_id, customer_phone, customer_email, customer_gender,
		       discount_percent, advance_amount, payment_method, payment_status,
		       sub_total, total_price, billing_date, billing_time, room,
		       created_at, updated_at
		FROM invoices
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		if err := r.loadLines(inv); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *InvoiceRepo) scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var appointmentID, customerID, customerEmail, paymentStatus, room *string
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &appointmentID,
		&inv.Customer.Name, &customerID, &inv.Customer.Phone, &customerEmail, &inv.Customer.Gender,
		&inv.GlobalDiscountPercent, &inv.AdvanceAmount, &inv.PaymentMethod, &paymentStatus,
		&inv.SubTotal, &inv.TotalPrice, &inv.BillingDate, &inv.BillingTime, &room,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.AppointmentID = derefStr(appointmentID)
	inv.Customer.CustomerID = derefStr(customerID)
	inv.Customer.Email = derefStr(customerEmail)
	inv.PaymentStatus = derefStr(paymentStatus)
	inv.Room = derefStr(room)
	return &inv, nil
}

func (r *InvoiceRepo) loadLines(inv *entity.Invoice) error {
	const serviceQuery = `
		SELECT id, name, duration, staff, price, gst_percent, discount_percent, total
		FROM invoice_services WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), serviceQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice services: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.ServiceLine
		var duration, staff *string
		if err := rows.Scan(&s.ID, &s.Name, &duration, &staff, &s.Price, &s.GSTPercent, &s.DiscountPercent, &s.Total); err != nil {
			return fmt.Errorf("scan invoice service: %w", err)
		}
		s.Duration = derefStr(duration)
		s.Staff = derefStr(staff)
		inv.Services = append(inv.Services, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const productQuery = `
		SELECT id, name, quantity, unit_price, gst_percent, discount_percent, total
		FROM invoice_products WHERE invoice_id = $1 ORDER BY position`
	prows, err := r.q.Query(context.Background(), productQuery, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice products: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p entity.ProductLine
		if err := prows.Scan(&p.ID, &p.Name, &p.Quantity, &p.UnitPrice, &p.GSTPercent, &p.DiscountPercent, &p.Total); err != nil {
			return fmt.Errorf("scan invoice product: %w", err)
		}
		inv.Products = append(inv.Products, p)
	}
	return prows.Err()
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
