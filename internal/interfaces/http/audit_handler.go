package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// AuditHandler maneja el módulo de auditoría interna.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler de auditorías.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar auditoría interna
// @Tags         internal-audit
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditRequest  true  "plan de auditoría"
// @Success      201   {object}  entity.InternalAudit
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/internal-audit [post]
func (h *AuditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	audit, err := h.uc.Create(c.Context(), GetVendorID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(audit)
}

// List lista las auditorías del vendor.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), GetVendorID(c), page)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID devuelve una auditoría del vendor.
func (h *AuditHandler) GetByID(c *fiber.Ctx) error {
	audit, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(audit)
}

// Update reemplaza el contenido completo de la auditoría (mismo cuerpo que
// Create); los empleados referenciados se validan igual que al crear.
func (h *AuditHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	audit, err := h.uc.Update(c.Context(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(audit)
}

// UpdateStatus cambia el estado del ciclo de vida de la auditoría.
func (h *AuditHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAuditStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	audit, err := h.uc.UpdateStatus(c.Context(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(audit)
}

// AddFinding agrega un hallazgo; responde la auditoría con métricas recalculadas.
func (h *AuditHandler) AddFinding(c *fiber.Ctx) error {
	var in dto.AddFindingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	audit, err := h.uc.AddFinding(c.Context(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(audit)
}

// Delete elimina una auditoría del vendor.
func (h *AuditHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetVendorID(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
