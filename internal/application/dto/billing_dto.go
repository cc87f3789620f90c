package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// CustomerRequest identifies the customer on a manual bill.
type CustomerRequest struct {
	Name       string `json:"name"`
	CustomerID string `json:"customer_id,omitempty"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Gender     string `json:"gender,omitempty"` // Male | Female | Other
}

// ServiceItemRequest is one service line on a manual bill. GST and discount
// are optional: a nil GST takes the configured default, a nil discount is 0.
type ServiceItemRequest struct {
	Name            string           `json:"name"`
	Duration        string           `json:"duration,omitempty"`
	Staff           string           `json:"staff,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	GSTPercent      *decimal.Decimal `json:"gst,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount,omitempty"`
}

// ProductItemRequest is one product line on a manual bill.
type ProductItemRequest struct {
	Name            string           `json:"name"`
	Quantity        int64            `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	GSTPercent      *decimal.Decimal `json:"gst,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount,omitempty"`
}

// CreateInvoiceRequest is the body for POST /api/invoices.
type CreateInvoiceRequest struct {
	Customer        CustomerRequest      `json:"customer"`
	Services        []ServiceItemRequest `json:"services,omitempty"`
	Products        []ProductItemRequest `json:"products,omitempty"`
	DiscountPercent *decimal.Decimal     `json:"discount_percent,omitempty"`
	AdvanceAmount   *decimal.Decimal     `json:"advance_amount,omitempty"`
	PaymentMethod   string               `json:"payment_method"`
	PaymentStatus   string               `json:"payment_status,omitempty"`
}

// AppointmentBillRequest is the body for POST /api/invoices/appointment: the
// appointment snapshot as the scheduling side hands it over.
type AppointmentBillRequest struct {
	AppointmentID string `json:"appointment_id"`
	User          struct {
		ID    string `json:"id,omitempty"`
		Name  string `json:"name,omitempty"`
		Phone string `json:"phone,omitempty"`
		Email string `json:"email,omitempty"`
	} `json:"user"`
	Service struct {
		ID    string `json:"id,omitempty"`
		Name  string `json:"name,omitempty"`
		Tiers []struct {
			DurationMinutes int             `json:"duration_minutes"`
			Price           decimal.Decimal `json:"price"`
		} `json:"tiers,omitempty"`
	} `json:"service"`
	Room struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"room"`
	Employee struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employee"`
	ServicePrice  decimal.Decimal `json:"service_price"`
	RoomPrice     decimal.Decimal `json:"room_price"`
	TotalPrice    decimal.Decimal `json:"total_price"` // scheduler scratch, recomputed
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	DateTime      time.Time       `json:"date_time"`
}

// ToEntity maps the request onto the appointment read model.
func (r AppointmentBillRequest) ToEntity() entity.Appointment {
	appt := entity.Appointment{
		ID: r.AppointmentID,
		User: entity.AppointmentUser{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Phone: r.User.Phone,
			Email: r.User.Email,
		},
		Service: entity.AppointmentService{
			ID:   r.Service.ID,
			Name: r.Service.Name,
		},
		Room:          entity.AppointmentRoom{ID: r.Room.ID, Name: r.Room.Name},
		Employee:      entity.AppointmentEmployee{ID: r.Employee.ID, Name: r.Employee.Name},
		ServicePrice:  r.ServicePrice,
		RoomPrice:     r.RoomPrice,
		TotalPrice:    r.TotalPrice,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		DateTime:      r.DateTime,
	}
	for _, t := range r.Service.Tiers {
		appt.Service.Tiers = append(appt.Service.Tiers, entity.PricingTier{
			DurationMinutes: t.DurationMinutes,
			Price:           t.Price,
		})
	}
	return appt
}

// ServiceLineResponse is a finalized service line.
type ServiceLineResponse struct {
	Name            string          `json:"name"`
	Duration        string          `json:"duration,omitempty"`
	Staff           string          `json:"staff,omitempty"`
	Price           decimal.Decimal `json:"price"`
	GSTPercent      decimal.Decimal `json:"gst"`
	DiscountPercent decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
}

// ProductLineResponse is a finalized product line.
type ProductLineResponse struct {
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	GSTPercent      decimal.Decimal `json:"gst"`
	DiscountPercent decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceResponse is a finalized invoice as returned to clients. The invoice
// number is the external key.
type InvoiceResponse struct {
	InvoiceNumber   string                `json:"invoice_number"`
	AppointmentID   string                `json:"appointment_id,omitempty"`
	Customer        CustomerRequest       `json:"customer"`
	Services        []ServiceLineResponse `json:"services"`
	Products        []ProductLineResponse `json:"products"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	AdvanceAmount   decimal.Decimal       `json:"advance_amount"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentStatus   string                `json:"payment_status,omitempty"`
	SubTotal        decimal.Decimal       `json:"sub_total"`
	TotalPrice      decimal.Decimal       `json:"total_price"`
	BillingDate     string                `json:"billing_date"`
	BillingTime     string                `json:"billing_time"`
	Room            string                `json:"room,omitempty"`
}

// NewInvoiceResponse maps a finalized invoice to its response shape,
// preserving line order (services first, then products).
func NewInvoiceResponse(inv *entity.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		InvoiceNumber: inv.InvoiceNumber,
		AppointmentID: inv.AppointmentID,
		Customer: CustomerRequest{
			Name:       inv.Customer.Name,
			CustomerID: inv.Customer.CustomerID,
			Phone:      inv.Customer.Phone,
			Email:      inv.Customer.Email,
			Gender:     inv.Customer.Gender,
		},
		Services:        make([]ServiceLineResponse, 0, len(inv.Services)),
		Products:        make([]ProductLineResponse, 0, len(inv.Products)),
		DiscountPercent: inv.GlobalDiscountPercent,
		AdvanceAmount:   inv.AdvanceAmount,
		PaymentMethod:   inv.PaymentMethod,
		PaymentStatus:   inv.PaymentStatus,
		SubTotal:        inv.SubTotal,
		TotalPrice:      inv.TotalPrice,
		BillingDate:     inv.BillingDate,
		BillingTime:     inv.BillingTime,
		Room:            inv.Room,
	}
	for _, s := range inv.Services {
		resp.Services = append(resp.Services, ServiceLineResponse{
			Name:            s.Name,
			Duration:        s.Duration,
			Staff:           s.Staff,
			Price:           s.Price,
			GSTPercent:      s.GSTPercent,
			DiscountPercent: s.DiscountPercent,
			Total:           s.Total,
		})
	}
	for _, p := range inv.Products {
		resp.Products = append(resp.Products, ProductLineResponse{
			Name:            p.Name,
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			GSTPercent:      p.GSTPercent,
			DiscountPercent: p.DiscountPercent,
			Total:           p.Total,
		})
	}
	return resp
}
