package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/application/dto"
)

// ReportHandler handles sales report downloads (protected, admin only).
type ReportHandler struct {
	uc *billing.SalesReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *billing.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport streams the sales summary PDF for a date window. The "to" day
// is included in the report.
// GET /api/reports/sales?from=2026-01-01&to=2026-01-31
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be YYYY-MM-DD"})
	}

	pdfBytes, filename, err := h.uc.GenerateSalesReport(c.Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		return billingError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
