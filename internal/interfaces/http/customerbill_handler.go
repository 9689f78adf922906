package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
)

// CustomerBillHandler maneja la facturación de clientes finales.
type CustomerBillHandler struct {
	uc *usecase.CustomerBillUseCase
}

// NewCustomerBillHandler construye el handler de facturación.
func NewCustomerBillHandler(uc *usecase.CustomerBillUseCase) *CustomerBillHandler {
	return &CustomerBillHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar factura de cliente
// @Tags         customer-billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerBillRequest  true  "factura"
// @Success      201   {object}  entity.CustomerBill
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customer-billing [post]
func (h *CustomerBillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.Create(c.Context(), GetVendorID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// List lista las facturas del vendor por fecha descendente.
func (h *CustomerBillHandler) List(c *fiber.Ctx) error {
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

// GetByID devuelve una factura del vendor.
func (h *CustomerBillHandler) GetByID(c *fiber.Ctx) error {
	bill, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(bill)
}

// Update reemplaza la factura recalculando totales.
func (h *CustomerBillHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.Update(c.Context(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(bill)
}

// Delete elimina una factura del vendor.
func (h *CustomerBillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetVendorID(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         customer-billing
// @Produce      application/pdf
// @Param        id  path  string  true  "bill id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customer-billing/{id}/pdf [get]
func (h *CustomerBillHandler) GetPDF(c *fiber.Ctx) error {
	data, err := h.uc.GeneratePDF(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="factura.pdf"`)
	return c.Send(data)
}
