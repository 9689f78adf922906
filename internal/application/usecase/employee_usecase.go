package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// validEmployeeRoles roles asignables.
var validEmployeeRoles = map[string]bool{
	entity.EmployeeRoleManager: true,
	entity.EmployeeRoleStaff:   true,
	entity.EmployeeRoleAdmin:   true,
	entity.EmployeeRoleViewer:  true,
}

// validAttendanceStatus estados de asistencia aceptados.
var validAttendanceStatus = map[string]bool{
	"Present": true,
	"Absent":  true,
	"Leave":   true,
}

// EmployeeUseCase casos de uso del directorio de empleados del vendor.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create da de alta un empleado del vendor. Email único por vendor
// (ErrDuplicate si colisiona); rol por defecto Staff.
func (uc *EmployeeUseCase) Create(ctx context.Context, vendorID string, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.EmployeeRoleStaff
	}
	if !validEmployeeRoles[role] {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	joined := now
	if in.JoinedDate != nil {
		joined = *in.JoinedDate
	}
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		VendorID:   vendorID,
		Name:       in.Name,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:      in.Phone,
		Address:    in.Address,
		JoinedDate: joined,
		Role:       role,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Get devuelve un empleado del vendor (activo o no).
func (uc *EmployeeUseCase) Get(ctx context.Context, vendorID, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

// List lista los empleados activos del vendor.
func (uc *EmployeeUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.Employee, error) {
	page.DefaultPage()
	return uc.repo.ListActive(ctx, vendorID, page.Limit, page.Offset)
}

// Update actualiza los datos básicos del empleado. El email no se cambia
// por esta vía.
func (uc *EmployeeUseCase) Update(ctx context.Context, vendorID, id string, in dto.UpdateEmployeeRequest) (*entity.Employee, error) {
	employee, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if in.Role != "" && !validEmployeeRoles[in.Role] {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Address != "" {
		employee.Address = in.Address
	}
	if in.Role != "" {
		employee.Role = in.Role
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Deactivate baja lógica del empleado. Idempotente: desactivar a un empleado
// ya inactivo no es error; el registro sigue legible por id.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, vendorID, id string) error {
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return err
	}
	return uc.repo.Deactivate(ctx, vendorID, id)
}

// AddAttendance registra una marca de asistencia (append-only).
func (uc *EmployeeUseCase) AddAttendance(ctx context.Context, vendorID, id string, in dto.AttendanceRequest) (*entity.Employee, error) {
	if !validAttendanceStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return nil, err
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	entry := entity.AttendanceEntry{Date: date, Shift: in.Shift, Status: in.Status}
	if err := uc.repo.AppendAttendance(ctx, vendorID, id, entry); err != nil {
		return nil, err
	}
	return uc.Get(ctx, vendorID, id)
}

// AddSalary registra una liquidación mensual. NetPay se recalcula siempre.
func (uc *EmployeeUseCase) AddSalary(ctx context.Context, vendorID, id string, in dto.SalaryRequest) (*entity.Employee, error) {
	if in.Month == "" || in.BasicPay < 0 || in.Deductions < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return nil, err
	}
	entry := entity.SalaryEntry{
		Month:      in.Month,
		BasicPay:   in.BasicPay,
		Deductions: in.Deductions,
		NetPay:     in.BasicPay - in.Deductions,
	}
	if err := uc.repo.AppendSalary(ctx, vendorID, id, entry); err != nil {
		return nil, err
	}
	return uc.Get(ctx, vendorID, id)
}

// AddPerformanceIssue registra un incidente de desempeño.
func (uc *EmployeeUseCase) AddPerformanceIssue(ctx context.Context, vendorID, id string, in dto.PerformanceIssueRequest) (*entity.Employee, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return nil, err
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	entry := entity.PerformanceIssue{
		Date:        date,
		Description: in.Description,
		Severity:    in.Severity,
		RaisedBy:    in.RaisedBy,
	}
	if err := uc.repo.AppendPerformanceIssue(ctx, vendorID, id, entry); err != nil {
		return nil, err
	}
	return uc.Get(ctx, vendorID, id)
}

// AssignShift asigna (o reemplaza) el turno del empleado.
func (uc *EmployeeUseCase) AssignShift(ctx context.Context, vendorID, id string, in dto.ShiftRequest) (*entity.Employee, error) {
	if in.ShiftName == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return nil, err
	}
	shift := entity.ShiftAllocation{ShiftName: in.ShiftName, StartTime: in.StartTime, EndTime: in.EndTime}
	if err := uc.repo.AssignShift(ctx, vendorID, id, shift); err != nil {
		return nil, err
	}
	return uc.Get(ctx, vendorID, id)
}
