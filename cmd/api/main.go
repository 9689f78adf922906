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
	"github.com/vendorsahyog/riskguard-api/internal/application/auth"
	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
	"github.com/vendorsahyog/riskguard-api/internal/application/riskai"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
	infraai "github.com/vendorsahyog/riskguard-api/internal/infrastructure/ai"
	"github.com/vendorsahyog/riskguard-api/internal/infrastructure/extract"
	infrapdf "github.com/vendorsahyog/riskguard-api/internal/infrastructure/pdf"
	"github.com/vendorsahyog/riskguard-api/internal/infrastructure/postgres"
	httpRouter "github.com/vendorsahyog/riskguard-api/internal/interfaces/http"
	"github.com/vendorsahyog/riskguard-api/pkg/config"
	"github.com/vendorsahyog/riskguard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	vendorRepo := postgres.NewVendorRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	kriRepo := postgres.NewKRIRepository(pool)
	siteRiskRepo := postgres.NewSiteRiskRepository(pool)
	bcmRepo := postgres.NewBCMPolicyRepository(pool)
	auditRepo := postgres.NewInternalAuditRepository(pool)
	billRepo := postgres.NewCustomerBillRepository(pool)

	// Proveedor de IA: groq por defecto, gemini como alternativo.
	var completionSvc ports.CompletionService
	switch cfg.AI.Provider {
	case "gemini":
		completionSvc = infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	default:
		completionSvc = infraai.NewGroqService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)
	}
	delegate := riskai.NewDelegate(completionSvc)
	log.Info().Str("model", delegate.ModelName()).Msg("proveedor de IA configurado")

	authUC := auth.NewAuthUseCase(vendorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	licenseSvc := usecase.NewLicenseService(licenseRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	kriUC := usecase.NewKRIUseCase(kriRepo, delegate)
	siteRiskUC := usecase.NewSiteRiskUseCase(siteRiskRepo, delegate)
	bcmUC := usecase.NewBCMUseCase(bcmRepo, delegate, extract.NewDocumentExtractor())
	auditUC := usecase.NewAuditUseCase(auditRepo, employeeRepo)
	billUC := usecase.NewCustomerBillUseCase(billRepo, infrapdf.NewMarotoBillGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // las rutas de IA esperan al modelo
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RiskGuard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LicenseService: licenseSvc,
		KRIUC:          kriUC,
		SiteRiskUC:     siteRiskUC,
		BCMUC:          bcmUC,
		EmployeeUC:     employeeUC,
		AuditUC:        auditUC,
		CustomerBillUC: billUC,
		VendorRepo:     vendorRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
