package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/application/dto"
	"github.com/salonpro/salonpro-api/internal/domain"
	"github.com/salonpro/salonpro-api/internal/render"
)

// InvoiceHandler handles billing requests (protected).
type InvoiceHandler struct {
	createUC  *billing.CreateInvoiceUseCase
	receiptUC *billing.ReceiptUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, receiptUC *billing.ReceiptUseCase) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, receiptUC: receiptUC}
}

// Create bills a hand-entered draft.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	invoice, err := h.createUC.CreateManual(c.Context(), in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// CreateFromAppointment bills an appointment record.
// POST /api/invoices/appointment
func (h *InvoiceHandler) CreateFromAppointment(c *fiber.Ctx) error {
	var in dto.AppointmentBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	invoice, err := h.createUC.CreateFromAppointment(c.Context(), in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByNumber returns a persisted invoice.
// GET /api/invoices/:number
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice number required"})
	}
	invoice, err := h.createUC.GetInvoice(c.Context(), number)
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(invoice)
}

// DownloadReceipt streams the printable receipt.
// GET /api/invoices/:number/receipt?profile=compact|full
func (h *InvoiceHandler) DownloadReceipt(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice number required"})
	}
	profile := render.ParseProfile(c.Query("profile"))
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.Context(), number, profile)
	if err != nil {
		return billingError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// billingError maps domain errors to HTTP responses.
func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidLineItem):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LINE_ITEM", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateInvoiceNumber):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_INVOICE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	case errors.Is(err, domain.ErrRenderFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILURE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
