package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// LocalModuleLicense clave de Locals con la licencia vigente que habilitó la
// request (para mostrar vigencia restante aguas abajo).
const LocalModuleLicense = "module_license"

// accessChecker es el contrato mínimo que necesita el middleware para
// verificar licencias. Lo implementa *usecase.LicenseService; la interfaz
// permite fakes en tests.
type accessChecker interface {
	CheckAccess(ctx context.Context, vendorID, moduleCode string) (*entity.ModuleLicense, *usecase.AccessDenial, error)
}

// RequireModule devuelve un middleware Fiber que verifica si el vendor del
// token tiene una licencia vigente del módulo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalVendorID). La vigencia se evalúa contra la
// ventana de fechas en cada request.
//
// Comportamiento:
//   - 403 MODULE_NOT_PURCHASED → el vendor nunca compró el módulo.
//   - 403 MODULE_EXPIRED       → hubo licencias pero ninguna vigente.
//   - 503 Service Unavailable  → fallo de infraestructura al consultar la DB.
//   - 401 si no hay vendor_id en el contexto (AuthMiddleware ausente).
func RequireModule(moduleCode string, checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendorID := GetVendorID(c)
		if vendorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "vendor_id no encontrado en el token",
			})
		}

		license, denial, err := checker.CheckAccess(c.Context(), vendorID, moduleCode)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}
		if denial != nil {
			if denial.NotPurchased {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code:    "MODULE_NOT_PURCHASED",
					Message: "el módulo '" + moduleCode + "' no está contratado",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_EXPIRED",
				Message: "la licencia del módulo '" + moduleCode + "' está vencida o cancelada",
			})
		}

		c.Locals(LocalModuleLicense, license)
		return c.Next()
	}
}
