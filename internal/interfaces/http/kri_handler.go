package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// KRIHandler maneja el módulo Key Risk Indicators.
type KRIHandler struct {
	uc *usecase.KRIUseCase
}

// NewKRIHandler construye el handler KRI.
func NewKRIHandler(uc *usecase.KRIUseCase) *KRIHandler {
	return &KRIHandler{uc: uc}
}

// Create godoc
// @Summary      Generar evaluación KRI
// @Tags         kri
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKRIRequest  true  "entrada TEXT o STRUCTURED"
// @Success      201   {object}  entity.KRIAssessment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/kri [post]
func (h *KRIHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKRIRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	assessment, err := h.uc.Create(c.Context(), GetVendorID(c), GetVendorCode(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// List lista las evaluaciones KRI del vendor.
func (h *KRIHandler) List(c *fiber.Ctx) error {
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

// GetByID devuelve una evaluación KRI del vendor.
func (h *KRIHandler) GetByID(c *fiber.Ctx) error {
	assessment, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(assessment)
}
