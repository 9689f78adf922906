package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/auth"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LicenseService *usecase.LicenseService
	KRIUC          *usecase.KRIUseCase
	SiteRiskUC     *usecase.SiteRiskUseCase
	BCMUC          *usecase.BCMUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	AuditUC        *usecase.AuditUseCase
	CustomerBillUC *usecase.CustomerBillUseCase
	VendorRepo     repository.VendorRepository
	JWTSecret      string
}

// Router registra las rutas de la API. Los módulos comprables cuelgan de
// RequireModule, que evalúa la licencia vigente en cada request.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de un vendor existente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.VendorRepo))

	// Billing de módulos (protegido pero sin gate: aquí se compran las licencias)
	billing := protected.Group("/billing")
	licenseHandler := NewLicenseHandler(deps.LicenseService)
	billing.Post("/purchase", licenseHandler.Purchase)
	billing.Get("/my-modules", licenseHandler.MyModules)
	billing.Put("/:id/cancel", licenseHandler.Cancel)

	// Empleados (protegido, sin gate: es infraestructura compartida que
	// referencian las auditorías)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Put("/:id/deactivate", employeeHandler.Deactivate)
	employees.Post("/:id/attendance", employeeHandler.AddAttendance)
	employees.Post("/:id/salary", employeeHandler.AddSalary)
	employees.Post("/:id/performance", employeeHandler.AddPerformanceIssue)
	employees.Put("/:id/shift", employeeHandler.AssignShift)

	// KRI (gate por licencia)
	kri := protected.Group("/kri", RequireModule(entity.ModuleKRI, deps.LicenseService))
	kriHandler := NewKRIHandler(deps.KRIUC)
	kri.Post("/", kriHandler.Create)
	kri.Get("/", kriHandler.List)
	kri.Get("/:id", kriHandler.GetByID)

	// Site Risk (gate por licencia)
	siteRisk := protected.Group("/site-risk", RequireModule(entity.ModuleSiteRisk, deps.LicenseService))
	siteRiskHandler := NewSiteRiskHandler(deps.SiteRiskUC)
	siteRisk.Post("/", siteRiskHandler.Create)
	siteRisk.Get("/", siteRiskHandler.List)
	siteRisk.Get("/:id", siteRiskHandler.GetByID)

	// BCM (gate por licencia)
	bcm := protected.Group("/bcm-policy", RequireModule(entity.ModuleBCM, deps.LicenseService))
	bcmHandler := NewBCMHandler(deps.BCMUC)
	bcm.Post("/upload", bcmHandler.Upload)
	bcm.Post("/", bcmHandler.AnalyzeText)
	bcm.Get("/", bcmHandler.List)
	bcm.Get("/:id", bcmHandler.GetByID)

	// Auditoría interna (gate por licencia)
	audits := protected.Group("/internal-audit", RequireModule(entity.ModuleInternalAudit, deps.LicenseService))
	auditHandler := NewAuditHandler(deps.AuditUC)
	audits.Post("/", auditHandler.Create)
	audits.Get("/", auditHandler.List)
	audits.Get("/:id", auditHandler.GetByID)
	audits.Put("/:id", auditHandler.Update)
	audits.Put("/:id/status", auditHandler.UpdateStatus)
	audits.Post("/:id/findings", auditHandler.AddFinding)
	audits.Delete("/:id", auditHandler.Delete)

	// Facturación de clientes (gate por licencia)
	bills := protected.Group("/customer-billing", RequireModule(entity.ModuleCustomerBilling, deps.LicenseService))
	billHandler := NewCustomerBillHandler(deps.CustomerBillUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", billHandler.Delete)
	bills.Get("/:id/pdf", billHandler.GetPDF)
}
