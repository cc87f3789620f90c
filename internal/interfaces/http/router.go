package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonpro/salonpro-api/internal/application/auth"
	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
)

// RouterDeps holds the wired use cases the router needs.
type RouterDeps struct {
	CreateInvoice *billing.CreateInvoiceUseCase
	Receipt       *billing.ReceiptUseCase
	SalesReport   *billing.SalesReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices and receipts (protected)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.Receipt)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/appointment", invoiceHandler.CreateFromAppointment)
	invoices.Get("/:number", invoiceHandler.GetByNumber)
	invoices.Get("/:number/receipt", invoiceHandler.DownloadReceipt)

	// Sales reports (protected, admin only)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.SalesReport)
	reports.Get("/sales", reportHandler.SalesReport)
}
