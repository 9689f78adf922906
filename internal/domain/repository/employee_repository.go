package repository

import (
	"context"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// Toda operación está acotada al vendor; un registro de otro vendor se
// comporta como inexistente.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.Employee, error)
	// ListActive lista solo empleados activos del vendor.
	ListActive(ctx context.Context, vendorID string, limit, offset int) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// Deactivate apaga IsActive. Idempotente: desactivar dos veces no es error.
	Deactivate(ctx context.Context, vendorID, id string) error
	// Append* agregan una entrada al log embebido correspondiente sin
	// reescribir el resto (concat JSONB).
	AppendAttendance(ctx context.Context, vendorID, id string, entry entity.AttendanceEntry) error
	AppendSalary(ctx context.Context, vendorID, id string, entry entity.SalaryEntry) error
	AppendPerformanceIssue(ctx context.Context, vendorID, id string, entry entity.PerformanceIssue) error
	AssignShift(ctx context.Context, vendorID, id string, shift entity.ShiftAllocation) error
	// CountByIDs cuenta cuántos de los IDs dados pertenecen al vendor.
	CountByIDs(ctx context.Context, vendorID string, ids []string) (int, error)
}
