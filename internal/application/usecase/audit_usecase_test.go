package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

type fakeAuditRepo struct {
	audits map[string]*entity.InternalAudit
	err    error
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{audits: make(map[string]*entity.InternalAudit)}
}

func (f *fakeAuditRepo) Create(_ context.Context, a *entity.InternalAudit) error {
	if f.err != nil {
		return f.err
	}
	f.audits[a.ID] = a
	return nil
}

func (f *fakeAuditRepo) GetByID(_ context.Context, vendorID, id string) (*entity.InternalAudit, error) {
	a, ok := f.audits[id]
	if !ok || a.VendorID != vendorID {
		return nil, f.err
	}
	return a, f.err
}

func (f *fakeAuditRepo) ListByVendor(_ context.Context, vendorID string, _, _ int) ([]*entity.InternalAudit, error) {
	var out []*entity.InternalAudit
	for _, a := range f.audits {
		if a.VendorID == vendorID {
			out = append(out, a)
		}
	}
	return out, f.err
}

func (f *fakeAuditRepo) Update(_ context.Context, a *entity.InternalAudit) error {
	f.audits[a.ID] = a
	return f.err
}

func (f *fakeAuditRepo) UpdateStatus(_ context.Context, vendorID, id, status string) error {
	if a, ok := f.audits[id]; ok && a.VendorID == vendorID {
		a.Status = status
	}
	return f.err
}

func (f *fakeAuditRepo) Delete(_ context.Context, _, id string) error {
	delete(f.audits, id)
	return f.err
}

func (f *fakeAuditRepo) AppendFinding(_ context.Context, a *entity.InternalAudit) error {
	f.audits[a.ID] = a
	return f.err
}

func newAuditUC() (*AuditUseCase, *fakeEmployeeRepo) {
	empRepo := newFakeEmployeeRepo()
	return NewAuditUseCase(newFakeAuditRepo(), empRepo), empRepo
}

func seedEmployee(empRepo *fakeEmployeeRepo, vendorID, id string) {
	empRepo.employees[id] = &entity.Employee{ID: id, VendorID: vendorID, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — métricas derivadas y referencias a empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditCreate_MetricasDerivadas(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{
		AuditName: "Auditoría ISO anual",
		Findings: []entity.AuditFinding{
			{Observation: "a", Severity: entity.FindingSeverityMedium},
			{Observation: "b", Severity: entity.FindingSeverityHigh},
			{Observation: "c", Severity: entity.FindingSeverityCritical},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, audit.TotalFindings)
	assert.Equal(t, 1, audit.FindingSeveritySummary.Medium)
	assert.Equal(t, 1, audit.FindingSeveritySummary.High)
	assert.Equal(t, 1, audit.FindingSeveritySummary.Critical)
	// 100 − 2·1 − 5·1 − 10·1 = 83
	assert.Equal(t, 83, audit.OverallAuditScore)
	assert.Equal(t, entity.AuditStatusPlanned, audit.Status, "estado por defecto Planned")
	assert.True(t, strings.HasPrefix(audit.AuditCode, "AUD-"), "código generado si falta")
}

func TestAuditCreate_ScoreAcotadoACero(t *testing.T) {
	uc, _ := newAuditUC()

	findings := make([]entity.AuditFinding, 12)
	for i := range findings {
		findings[i] = entity.AuditFinding{Observation: "x", Severity: entity.FindingSeverityCritical}
	}
	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{
		AuditName: "Auditoría desastrosa",
		Findings:  findings,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, audit.OverallAuditScore, "el score nunca baja de 0")
}

func TestAuditCreate_AsignaFindingIDs(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{
		AuditName: "Auditoría",
		Findings:  []entity.AuditFinding{{Observation: "x", Severity: entity.FindingSeverityLow}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(audit.Findings[0].FindingID, "FND-"))
	assert.Equal(t, "Open", audit.Findings[0].Status)
}

func TestAuditCreate_AuditorDeOtroVendor_EsInvalido(t *testing.T) {
	uc, empRepo := newAuditUC()
	seedEmployee(empRepo, "vendor-2", "emp-ajeno")

	_, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{
		AuditName: "Auditoría",
		Auditors:  []string{"emp-ajeno"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"referenciar empleados de otro vendor debe rechazarse")
}

func TestAuditCreate_AuditoresPropios_EsValido(t *testing.T) {
	uc, empRepo := newAuditUC()
	seedEmployee(empRepo, "vendor-1", "emp-1")
	seedEmployee(empRepo, "vendor-1", "emp-2")

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{
		AuditName:  "Auditoría",
		Auditors:   []string{"emp-1"},
		AuditOwner: "emp-2",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"emp-1", "emp-2"}, audit.ReferencedEmployeeIDs())
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — reemplazo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditUpdate_ConservaIdentidadYRecalcula(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), "vendor-1", audit.ID, dto.CreateAuditRequest{
		AuditName: "Auditoría renombrada",
		Status:    entity.AuditStatusOngoing,
		Findings: []entity.AuditFinding{
			{Observation: "x", Severity: entity.FindingSeverityHigh},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, audit.ID, updated.ID)
	assert.Equal(t, audit.AuditCode, updated.AuditCode, "el código no cambia en un reemplazo")
	assert.Equal(t, audit.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Auditoría renombrada", updated.AuditName)
	assert.Equal(t, 1, updated.TotalFindings)
	assert.Equal(t, 95, updated.OverallAuditScore)
	assert.True(t, strings.HasPrefix(updated.Findings[0].FindingID, "FND-"))
}

func TestAuditUpdate_CanceladaNoSeReabre(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), "vendor-1", audit.ID,
		dto.UpdateAuditStatusRequest{Status: entity.AuditStatusCancelled})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "vendor-1", audit.ID, dto.CreateAuditRequest{
		AuditName: "Auditoría",
		Status:    entity.AuditStatusOngoing,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuditUpdate_ValidaEmpleadosReferenciados(t *testing.T) {
	uc, empRepo := newAuditUC()
	seedEmployee(empRepo, "vendor-2", "emp-ajeno")

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "vendor-1", audit.ID, dto.CreateAuditRequest{
		AuditName: "Auditoría",
		Auditors:  []string{"emp-ajeno"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus — Cancelled es terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditUpdateStatus_CancelledEsTerminal(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "vendor-1", audit.ID,
		dto.UpdateAuditStatusRequest{Status: entity.AuditStatusCancelled})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "vendor-1", audit.ID,
		dto.UpdateAuditStatusRequest{Status: entity.AuditStatusOngoing})
	assert.ErrorIs(t, err, domain.ErrConflict, "una auditoría cancelada no puede reabrirse")
}

func TestAuditUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "vendor-1", audit.ID,
		dto.UpdateAuditStatusRequest{Status: "Paused"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddFinding
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditAddFinding_RecalculaMetricas(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)
	assert.Equal(t, 100, audit.OverallAuditScore)

	updated, err := uc.AddFinding(context.Background(), "vendor-1", audit.ID, dto.AddFindingRequest{
		Observation: "Backups sin verificar",
		Severity:    entity.FindingSeverityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.TotalFindings)
	assert.Equal(t, 95, updated.OverallAuditScore)
	assert.Equal(t, "Open", updated.Findings[0].Status)
}

func TestAuditAddFinding_SeveridadInvalida(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	_, err = uc.AddFinding(context.Background(), "vendor-1", audit.ID, dto.AddFindingRequest{
		Observation: "x", Severity: "Catastrophic",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuditGet_OtroVendor_Es404(t *testing.T) {
	uc, _ := newAuditUC()

	audit, err := uc.Create(context.Background(), "vendor-1", dto.CreateAuditRequest{AuditName: "Auditoría"})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "vendor-2", audit.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
