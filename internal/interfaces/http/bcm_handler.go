package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// maxPolicyUploadBytes límite del archivo de política subido.
const maxPolicyUploadBytes = 10 << 20 // 10 MB

// BCMHandler maneja el módulo de análisis de políticas BCM.
type BCMHandler struct {
	uc *usecase.BCMUseCase
}

// NewBCMHandler construye el handler BCM.
func NewBCMHandler(uc *usecase.BCMUseCase) *BCMHandler {
	return &BCMHandler{uc: uc}
}

// Upload godoc
// @Summary      Analizar política BCM subida (.pdf o .txt)
// @Tags         bcm
// @Accept       multipart/form-data
// @Produce      json
// @Param        policyFile    formData  file    false  "documento de política"
// @Param        rawTextInput  formData  string  false  "texto de la política si no se sube archivo"
// @Success      201  {object}  entity.BCMPolicyAnalysis
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/bcm-policy/upload [post]
func (h *BCMHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("policyFile")
	if err != nil {
		// Sin archivo: el form puede traer el texto directo en rawTextInput.
		if raw := c.FormValue("rawTextInput"); raw != "" {
			analysis, err := h.uc.AnalyzeText(c.Context(), GetVendorID(c), GetVendorCode(c), dto.AnalyzeBCMPolicyRequest{RawTextInput: raw})
			if err != nil {
				return writeDomainError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(analysis)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere policyFile o rawTextInput"})
	}
	if fileHeader.Size > maxPolicyUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo demasiado grande (máx 10 MB)"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo ilegible"})
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxPolicyUploadBytes))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo ilegible"})
	}

	analysis, err := h.uc.AnalyzeUpload(c.Context(), GetVendorID(c), GetVendorCode(c), fileHeader.Filename, data)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis)
}

// AnalyzeText analiza una política enviada como texto plano en el body.
func (h *BCMHandler) AnalyzeText(c *fiber.Ctx) error {
	var in dto.AnalyzeBCMPolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	analysis, err := h.uc.AnalyzeText(c.Context(), GetVendorID(c), GetVendorCode(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis)
}

// List lista los análisis BCM del vendor.
func (h *BCMHandler) List(c *fiber.Ctx) error {
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

// GetByID devuelve un análisis BCM del vendor.
func (h *BCMHandler) GetByID(c *fiber.Ctx) error {
	analysis, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(analysis)
}
