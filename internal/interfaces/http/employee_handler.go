package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/usecase"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// EmployeeHandler maneja el directorio de empleados del vendor.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Create(c.Context(), GetVendorID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEmployeeResponse(employee))
}

// List lista los empleados activos del vendor.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), GetVendorID(c), page)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToEmployeeResponse(e))
	}
	return c.JSON(out)
}

// GetByID devuelve un empleado del vendor (activo o no).
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.Get(c.Context(), GetVendorID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToEmployeeResponse(employee))
}

// Update actualiza los datos básicos del empleado.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Update(c.Context(), GetVendorID(c), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToEmployeeResponse(employee))
}

// Deactivate baja lógica del empleado (idempotente).
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), GetVendorID(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddAttendance registra una marca de asistencia.
func (h *EmployeeHandler) AddAttendance(c *fiber.Ctx) error {
	var in dto.AttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respondAppend(c, func() (*entity.Employee, error) {
		return h.uc.AddAttendance(c.Context(), GetVendorID(c), c.Params("id"), in)
	})
}

// AddSalary registra una liquidación mensual.
func (h *EmployeeHandler) AddSalary(c *fiber.Ctx) error {
	var in dto.SalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respondAppend(c, func() (*entity.Employee, error) {
		return h.uc.AddSalary(c.Context(), GetVendorID(c), c.Params("id"), in)
	})
}

// AddPerformanceIssue registra un incidente de desempeño.
func (h *EmployeeHandler) AddPerformanceIssue(c *fiber.Ctx) error {
	var in dto.PerformanceIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respondAppend(c, func() (*entity.Employee, error) {
		return h.uc.AddPerformanceIssue(c.Context(), GetVendorID(c), c.Params("id"), in)
	})
}

// AssignShift asigna o reemplaza el turno del empleado.
func (h *EmployeeHandler) AssignShift(c *fiber.Ctx) error {
	var in dto.ShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respondAppend(c, func() (*entity.Employee, error) {
		return h.uc.AssignShift(c.Context(), GetVendorID(c), c.Params("id"), in)
	})
}

func (h *EmployeeHandler) respondAppend(c *fiber.Ctx, fn func() (*entity.Employee, error)) error {
	employee, err := fn()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToEmployeeResponse(employee))
}
