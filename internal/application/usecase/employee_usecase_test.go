package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// fakeEmployeeRepo repositorio de empleados en memoria.
type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
	err       error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.employees {
		if existing.VendorID == e.VendorID && existing.Email == e.Email {
			return domain.ErrDuplicate
		}
	}
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, vendorID, id string) (*entity.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.VendorID != vendorID {
		return nil, f.err
	}
	return e, f.err
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context, vendorID string, _, _ int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.employees {
		if e.VendorID == vendorID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	f.employees[e.ID] = e
	return f.err
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, vendorID, id string) error {
	if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
		e.IsActive = false
	}
	return f.err
}

func (f *fakeEmployeeRepo) AppendAttendance(_ context.Context, vendorID, id string, entry entity.AttendanceEntry) error {
	if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
		e.AttendanceLogs = append(e.AttendanceLogs, entry)
	}
	return f.err
}

func (f *fakeEmployeeRepo) AppendSalary(_ context.Context, vendorID, id string, entry entity.SalaryEntry) error {
	if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
		e.SalaryRecords = append(e.SalaryRecords, entry)
	}
	return f.err
}

func (f *fakeEmployeeRepo) AppendPerformanceIssue(_ context.Context, vendorID, id string, entry entity.PerformanceIssue) error {
	if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
		e.PerformanceIssues = append(e.PerformanceIssues, entry)
	}
	return f.err
}

func (f *fakeEmployeeRepo) AssignShift(_ context.Context, vendorID, id string, shift entity.ShiftAllocation) error {
	if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
		e.ShiftAllocation = &shift
	}
	return f.err
}

func (f *fakeEmployeeRepo) CountByIDs(_ context.Context, vendorID string, ids []string) (int, error) {
	count := 0
	for _, id := range ids {
		if e, ok := f.employees[id]; ok && e.VendorID == vendorID {
			count++
		}
	}
	return count, f.err
}

func createEmployee(t *testing.T, uc *EmployeeUseCase, vendorID string) *entity.Employee {
	t.Helper()
	e, err := uc.Create(context.Background(), vendorID, dto.CreateEmployeeRequest{
		Name:  "Ana Gómez",
		Email: "Ana.Gomez@Example.com",
		Phone: "+57 300 000 0000",
	})
	require.NoError(t, err)
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / Deactivate
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeCreate_DefaultsYNormalizacion(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	e := createEmployee(t, uc, "vendor-1")

	assert.Equal(t, entity.EmployeeRoleStaff, e.Role, "rol por defecto Staff")
	assert.Equal(t, "ana.gomez@example.com", e.Email, "email normalizado a minúsculas")
	assert.True(t, e.IsActive)
	assert.False(t, e.JoinedDate.IsZero(), "joinedDate por defecto: ahora")
}

func TestEmployeeCreate_EmailDuplicadoMismoVendor(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	createEmployee(t, uc, "vendor-1")
	_, err := uc.Create(context.Background(), "vendor-1", dto.CreateEmployeeRequest{
		Name: "Otra Ana", Email: "ana.gomez@example.com", Phone: "x",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmployeeCreate_MismoEmailOtroVendor_EsValido(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	createEmployee(t, uc, "vendor-1")
	_, err := uc.Create(context.Background(), "vendor-2", dto.CreateEmployeeRequest{
		Name: "Ana Gómez", Email: "ana.gomez@example.com", Phone: "x",
	})
	assert.NoError(t, err, "el email es único por vendor, no global")
}

func TestEmployeeCreate_RolInvalido(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(context.Background(), "vendor-1", dto.CreateEmployeeRequest{
		Name: "Ana", Email: "a@b.c", Phone: "x", Role: "SuperAdmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeDeactivate_IdempotenteYSigueLegible(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo)
	e := createEmployee(t, uc, "vendor-1")

	require.NoError(t, uc.Deactivate(context.Background(), "vendor-1", e.ID))
	require.NoError(t, uc.Deactivate(context.Background(), "vendor-1", e.ID),
		"desactivar dos veces no es error")

	got, err := uc.Get(context.Background(), "vendor-1", e.ID)
	require.NoError(t, err, "el registro inactivo sigue legible por id")
	assert.False(t, got.IsActive)

	list, err := uc.List(context.Background(), "vendor-1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list, "el listado solo muestra activos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logs embebidos
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeAddSalary_RecalculaNetPay(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())
	e := createEmployee(t, uc, "vendor-1")

	got, err := uc.AddSalary(context.Background(), "vendor-1", e.ID, dto.SalaryRequest{
		Month: "2026-08", BasicPay: 50000, Deductions: 4500,
	})
	require.NoError(t, err)
	require.Len(t, got.SalaryRecords, 1)
	assert.Equal(t, 45500.0, got.SalaryRecords[0].NetPay, "netPay = basicPay − deductions, siempre en servidor")
}

func TestEmployeeAddAttendance_EstadoInvalido(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())
	e := createEmployee(t, uc, "vendor-1")

	_, err := uc.AddAttendance(context.Background(), "vendor-1", e.ID, dto.AttendanceRequest{Status: "Tarde"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeAddAttendance_AppendOnly(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())
	e := createEmployee(t, uc, "vendor-1")

	_, err := uc.AddAttendance(context.Background(), "vendor-1", e.ID, dto.AttendanceRequest{Status: "Present"})
	require.NoError(t, err)
	got, err := uc.AddAttendance(context.Background(), "vendor-1", e.ID, dto.AttendanceRequest{Status: "Absent"})
	require.NoError(t, err)

	assert.Len(t, got.AttendanceLogs, 2, "cada marca se agrega, nunca se reemplaza")
}

func TestEmployeeAssignShift_Reemplaza(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())
	e := createEmployee(t, uc, "vendor-1")

	_, err := uc.AssignShift(context.Background(), "vendor-1", e.ID, dto.ShiftRequest{ShiftName: "Mañana"})
	require.NoError(t, err)
	got, err := uc.AssignShift(context.Background(), "vendor-1", e.ID, dto.ShiftRequest{ShiftName: "Noche"})
	require.NoError(t, err)

	require.NotNil(t, got.ShiftAllocation)
	assert.Equal(t, "Noche", got.ShiftAllocation.ShiftName, "el turno se reemplaza, no se acumula")
}

func TestEmployeeUpdate_NoCambiaEmail(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())
	e := createEmployee(t, uc, "vendor-1")

	got, err := uc.Update(context.Background(), "vendor-1", e.ID, dto.UpdateEmployeeRequest{Name: "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Name)
	assert.Equal(t, "ana.gomez@example.com", got.Email)
}
