package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// LicenseHandler maneja la compra y consulta de licencias de módulos.
type LicenseHandler struct {
	svc *usecase.LicenseService
}

// NewLicenseHandler construye el handler de licencias.
func NewLicenseHandler(svc *usecase.LicenseService) *LicenseHandler {
	return &LicenseHandler{svc: svc}
}

// Purchase godoc
// @Summary      Comprar un módulo
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseModuleRequest  true  "módulo y precio"
// @Success      201   {object}  dto.ModuleLicenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/billing/purchase [post]
func (h *LicenseHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	license, err := h.svc.Purchase(c.Context(), GetVendorID(c), GetVendorCode(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToModuleLicenseResponse(license, time.Now()))
}

// MyModules godoc
// @Summary      Listar licencias del vendor
// @Tags         billing
// @Produce      json
// @Success      200  {array}  dto.ModuleLicenseResponse
// @Router       /api/billing/my-modules [get]
func (h *LicenseHandler) MyModules(c *fiber.Ctx) error {
	out, err := h.svc.MyModules(c.Context(), GetVendorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una licencia
// @Tags         billing
// @Produce      json
// @Param        id  path  string  true  "license id"
// @Success      200  {object}  dto.ModuleLicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/billing/{id}/cancel [put]
func (h *LicenseHandler) Cancel(c *fiber.Ctx) error {
	license, err := h.svc.Cancel(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToModuleLicenseResponse(license, time.Now()))
}
