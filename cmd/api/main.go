package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/salonpro/salonpro-api/internal/application/auth"
	"github.com/salonpro/salonpro-api/internal/application/billing"
	infrapdf "github.com/salonpro/salonpro-api/internal/infrastructure/pdf"
	"github.com/salonpro/salonpro-api/internal/infrastructure/postgres"
	httpRouter "github.com/salonpro/salonpro-api/internal/interfaces/http"
	"github.com/salonpro/salonpro-api/internal/render"
	"github.com/salonpro/salonpro-api/pkg/config"
	"github.com/salonpro/salonpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	defaultGST, err := decimal.NewFromString(cfg.Billing.DefaultGSTPercent)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Billing.DefaultGSTPercent).Msg("BILLING_DEFAULT_GST_PERCENT")
	}

	calc := billing.NewCalculator(billing.NewRandomNumberSource())
	adapter := billing.NewAppointmentAdapter()
	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, invoiceRepo, calc, adapter,
		billing.Policy{DefaultGSTPercent: defaultGST},
	)

	painter, err := infrapdf.NewFpdfPainter(cfg.Billing.ReceiptOutputDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Billing.ReceiptOutputDir).Msg("receipt output directory")
	}
	branding := render.Branding{
		SalonName:      cfg.Billing.SalonName,
		Tagline:        cfg.Billing.Tagline,
		Address:        cfg.Billing.Address,
		Phone:          cfg.Billing.Phone,
		Email:          cfg.Billing.Email,
		CurrencySymbol: cfg.Billing.CurrencySymbol,
		WatermarkText:  cfg.Billing.WatermarkText,
	}
	receiptUC := billing.NewReceiptUseCase(invoiceRepo, painter, branding)

	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Billing.SalonName, cfg.Billing.CurrencySymbol)
	salesReportUC := billing.NewSalesReportUseCase(invoiceRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SalonPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateInvoice: createInvoiceUC,
		Receipt:       receiptUC,
		SalesReport:   salesReportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
