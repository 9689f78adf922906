package entity

import "time"

// Roles de empleado.
const (
	EmployeeRoleManager = "Manager"
	EmployeeRoleStaff   = "Staff"
	EmployeeRoleAdmin   = "Admin"
	EmployeeRoleViewer  = "Viewer"
)

// Employee pertenece a exactamente un vendor. La baja es un soft-delete
// (IsActive=false); los logs embebidos son append-only.
type Employee struct {
	ID                string
	VendorID          string
	Name              string
	Email             string // único por vendor
	Phone             string
	Address           string
	JoinedDate        time.Time
	Role              string // ver constantes EmployeeRole*
	IsActive          bool
	ShiftAllocation   *ShiftAllocation
	AttendanceLogs    []AttendanceEntry
	SalaryRecords     []SalaryEntry
	PerformanceIssues []PerformanceIssue
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AttendanceEntry una marca de asistencia (append-only).
type AttendanceEntry struct {
	Date   time.Time `json:"date"`
	Shift  string    `json:"shift,omitempty"`
	Status string    `json:"status"` // Present | Absent | Leave
}

// SalaryEntry una liquidación mensual (append-only).
type SalaryEntry struct {
	Month      string  `json:"month"`
	BasicPay   float64 `json:"basicPay"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
}

// PerformanceIssue un incidente de desempeño (append-only).
type PerformanceIssue struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Severity    string    `json:"severity,omitempty"`
	RaisedBy    string    `json:"raisedBy,omitempty"`
}

// ShiftAllocation turno asignado al empleado.
type ShiftAllocation struct {
	ShiftName string `json:"shiftName"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}
