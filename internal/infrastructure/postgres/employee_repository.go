package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, vendor_id, name, email, phone, address, joined_date, role,
	is_active, shift_allocation, attendance_logs, salary_records, performance_issues,
	created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository. Los logs embebidos
// (asistencia, salarios, incidentes) viven en columnas JSONB y se agregan
// con concatenación (||) para no reescribir el arreglo completo.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado. Email único por vendor -> ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	shift, err := toJSONB(employee.ShiftAllocation)
	if err != nil {
		return fmt.Errorf("serializar shift: %w", err)
	}
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '[]', '[]', '[]', $11, $12)`
	_, err = r.q.Exec(ctx, query,
		employee.ID, employee.VendorID, employee.Name, employee.Email, employee.Phone,
		employee.Address, employee.JoinedDate, employee.Role, employee.IsActive,
		shift, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado del vendor (activo o no). (nil, nil) si no
// existe o pertenece a otro vendor.
func (r *EmployeeRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees WHERE vendor_id = $1 AND id = $2`
	employee, err := scanEmployee(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return employee, nil
}

// ListActive lista solo empleados activos del vendor.
func (r *EmployeeRepo) ListActive(ctx context.Context, vendorID string, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE vendor_id = $1 AND is_active = TRUE
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, employee)
	}
	return list, rows.Err()
}

// Update actualiza los datos básicos del empleado (no los logs).
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $3, phone = $4, address = $5, role = $6, updated_at = $7
		WHERE vendor_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		employee.VendorID, employee.ID, employee.Name, employee.Phone,
		employee.Address, employee.Role, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Deactivate apaga IsActive. Idempotente.
func (r *EmployeeRepo) Deactivate(ctx context.Context, vendorID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE vendor_id = $1 AND id = $2`,
		vendorID, id,
	)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	return nil
}

// AppendAttendance agrega una marca de asistencia al log JSONB.
func (r *EmployeeRepo) AppendAttendance(ctx context.Context, vendorID, id string, entry entity.AttendanceEntry) error {
	return r.appendLog(ctx, vendorID, id, "attendance_logs", entry)
}

// AppendSalary agrega una liquidación al log JSONB.
func (r *EmployeeRepo) AppendSalary(ctx context.Context, vendorID, id string, entry entity.SalaryEntry) error {
	return r.appendLog(ctx, vendorID, id, "salary_records", entry)
}

// AppendPerformanceIssue agrega un incidente al log JSONB.
func (r *EmployeeRepo) AppendPerformanceIssue(ctx context.Context, vendorID, id string, entry entity.PerformanceIssue) error {
	return r.appendLog(ctx, vendorID, id, "performance_issues", entry)
}

// appendLog concatena una entrada al arreglo JSONB indicado. La columna es
// fija (nunca viene del caller).
func (r *EmployeeRepo) appendLog(ctx context.Context, vendorID, id, column string, entry any) error {
	raw, err := toJSONB(entry)
	if err != nil {
		return fmt.Errorf("serializar entrada %s: %w", column, err)
	}
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = COALESCE(%s, '[]'::jsonb) || $3::jsonb, updated_at = NOW()
		WHERE vendor_id = $1 AND id = $2`, column, column)
	_, err = r.q.Exec(ctx, query, vendorID, id, raw)
	if err != nil {
		return fmt.Errorf("append %s: %w", column, err)
	}
	return nil
}

// AssignShift reemplaza el turno asignado.
func (r *EmployeeRepo) AssignShift(ctx context.Context, vendorID, id string, shift entity.ShiftAllocation) error {
	raw, err := toJSONB(shift)
	if err != nil {
		return fmt.Errorf("serializar shift: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`UPDATE employees SET shift_allocation = $3, updated_at = NOW() WHERE vendor_id = $1 AND id = $2`,
		vendorID, id, raw,
	)
	if err != nil {
		return fmt.Errorf("assign shift: %w", err)
	}
	return nil
}

// CountByIDs cuenta cuántos de los IDs dados pertenecen al vendor.
func (r *EmployeeRepo) CountByIDs(ctx context.Context, vendorID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE vendor_id = $1 AND id = ANY($2)`,
		vendorID, ids,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// scanEmployee escanea una fila con employeeColumns en orden.
func scanEmployee(row interface{ Scan(...any) error }) (*entity.Employee, error) {
	var e entity.Employee
	var shift, attendance, salary, issues []byte
	err := row.Scan(
		&e.ID, &e.VendorID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.JoinedDate,
		&e.Role, &e.IsActive, &shift, &attendance, &salary, &issues,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(shift, &e.ShiftAllocation); err != nil {
		return nil, fmt.Errorf("deserializar shift: %w", err)
	}
	if err := fromJSONB(attendance, &e.AttendanceLogs); err != nil {
		return nil, fmt.Errorf("deserializar attendance: %w", err)
	}
	if err := fromJSONB(salary, &e.SalaryRecords); err != nil {
		return nil, fmt.Errorf("deserializar salary: %w", err)
	}
	if err := fromJSONB(issues, &e.PerformanceIssues); err != nil {
		return nil, fmt.Errorf("deserializar issues: %w", err)
	}
	return &e, nil
}
