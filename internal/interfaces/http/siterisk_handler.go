package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// SiteRiskHandler maneja el módulo de riesgo de sitio físico.
type SiteRiskHandler struct {
	uc *usecase.SiteRiskUseCase
}

// NewSiteRiskHandler construye el handler Site Risk.
func NewSiteRiskHandler(uc *usecase.SiteRiskUseCase) *SiteRiskHandler {
	return &SiteRiskHandler{uc: uc}
}

// Create godoc
// @Summary      Generar evaluación de sitio
// @Tags         site-risk
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSiteRiskRequest  true  "entrada TEXT o STRUCTURED"
// @Success      201   {object}  entity.SiteRiskAssessment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/site-risk [post]
func (h *SiteRiskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSiteRiskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	assessment, err := h.uc.Create(c.Context(), GetVendorID(c), GetVendorCode(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// List lista las evaluaciones de sitio del vendor.
func (h *SiteRiskHandler) List(c *fiber.Ctx) error {
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

// GetByID devuelve una evaluación de sitio del vendor.
func (h *SiteRiskHandler) GetByID(c *fiber.Ctx) error {
	assessment, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(assessment)
}
