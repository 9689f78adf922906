package dto

import (
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// CreateEmployeeRequest alta de empleado. El vendor se toma del token,
// nunca del body.
type CreateEmployeeRequest struct {
	Name       string     `json:"employeeName"`
	Email      string     `json:"employeeEmail"`
	Phone      string     `json:"employeePhone"`
	Address    string     `json:"employeeAddress,omitempty"`
	JoinedDate *time.Time `json:"joinedDate,omitempty"`
	Role       string     `json:"role,omitempty"` // default Staff
}

// UpdateEmployeeRequest actualización de datos básicos.
type UpdateEmployeeRequest struct {
	Name    string `json:"employeeName,omitempty"`
	Phone   string `json:"employeePhone,omitempty"`
	Address string `json:"employeeAddress,omitempty"`
	Role    string `json:"role,omitempty"`
}

// AttendanceRequest una marca de asistencia a registrar.
type AttendanceRequest struct {
	Date   *time.Time `json:"date,omitempty"` // default: ahora
	Shift  string     `json:"shift,omitempty"`
	Status string     `json:"status"` // Present | Absent | Leave
}

// SalaryRequest una liquidación mensual a registrar. NetPay se recalcula
// siempre como basicPay − deductions.
type SalaryRequest struct {
	Month      string  `json:"month"` // ej. 2026-08
	BasicPay   float64 `json:"basicPay"`
	Deductions float64 `json:"deductions"`
}

// PerformanceIssueRequest un incidente de desempeño a registrar.
type PerformanceIssueRequest struct {
	Date        *time.Time `json:"date,omitempty"` // default: ahora
	Description string     `json:"description"`
	Severity    string     `json:"severity,omitempty"`
	RaisedBy    string     `json:"raisedBy,omitempty"`
}

// ShiftRequest asignación de turno.
type ShiftRequest struct {
	ShiftName string `json:"shiftName"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// EmployeeResponse vista del empleado con sus logs embebidos.
type EmployeeResponse struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"employeeName"`
	Email             string                    `json:"employeeEmail"`
	Phone             string                    `json:"employeePhone"`
	Address           string                    `json:"employeeAddress,omitempty"`
	JoinedDate        time.Time                 `json:"joinedDate"`
	Role              string                    `json:"role"`
	IsActive          bool                      `json:"isActive"`
	ShiftAllocation   *entity.ShiftAllocation   `json:"shiftAllocation,omitempty"`
	AttendanceLogs    []entity.AttendanceEntry  `json:"attendanceLogs,omitempty"`
	SalaryRecords     []entity.SalaryEntry      `json:"salaryRecords,omitempty"`
	PerformanceIssues []entity.PerformanceIssue `json:"performanceIssues,omitempty"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// ToEmployeeResponse proyecta la entidad a la vista pública.
func ToEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		JoinedDate:        e.JoinedDate,
		Role:              e.Role,
		IsActive:          e.IsActive,
		ShiftAllocation:   e.ShiftAllocation,
		AttendanceLogs:    e.AttendanceLogs,
		SalaryRecords:     e.SalaryRecords,
		PerformanceIssues: e.PerformanceIssues,
		CreatedAt:         e.CreatedAt,
	}
}
