package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/pkg/jwt"
)

// Locals keys para el vendor autenticado en Fiber.
const (
	LocalVendorID   = "vendor_id"
	LocalVendorCode = "vendor_code"
	LocalRole       = "role"
)

// vendorLoader contrato mínimo para verificar que el vendor del token sigue
// existiendo. Lo implementa repository.VendorRepository.
type vendorLoader interface {
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
}

// AuthMiddleware valida el Bearer Token JWT, verifica que el vendor exista
// todavía y deja vendorID/vendorCode/role en c.Locals. Un token firmado cuyo
// vendor ya no existe responde 401 igual que un token inválido.
func AuthMiddleware(jwtSecret string, vendors vendorLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		vendorID, vendorCode, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		vendor, err := vendors.GetByID(c.Context(), vendorID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo verificar la cuenta, intente más tarde"})
		}
		if vendor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "la cuenta ya no existe"})
		}

		c.Locals(LocalVendorID, vendorID)
		c.Locals(LocalVendorCode, vendorCode)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetVendorID devuelve el VendorID del contexto (después del middleware de auth).
func GetVendorID(c *fiber.Ctx) string {
	v := c.Locals(LocalVendorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetVendorCode devuelve el VendorCode del contexto.
func GetVendorCode(c *fiber.Ctx) string {
	v := c.Locals(LocalVendorCode)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
