package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// validAuditStatus estados del ciclo de vida de una auditoría.
var validAuditStatus = map[string]bool{
	entity.AuditStatusPlanned:   true,
	entity.AuditStatusOngoing:   true,
	entity.AuditStatusCompleted: true,
	entity.AuditStatusCancelled: true,
	entity.AuditStatusReported:  true,
}

// validFindingSeverity severidades de hallazgo aceptadas.
var validFindingSeverity = map[string]bool{
	entity.FindingSeverityLow:      true,
	entity.FindingSeverityMedium:   true,
	entity.FindingSeverityHigh:     true,
	entity.FindingSeverityCritical: true,
}

// AuditUseCase casos de uso del módulo de auditoría interna. Valida que todo
// empleado referenciado (auditores, owner, owners de hallazgos) pertenezca al
// vendor, y recalcula las métricas derivadas en cada escritura.
type AuditUseCase struct {
	repo    repository.InternalAuditRepository
	empRepo repository.EmployeeRepository
}

// NewAuditUseCase construye el caso de uso de auditorías.
func NewAuditUseCase(repo repository.InternalAuditRepository, empRepo repository.EmployeeRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo, empRepo: empRepo}
}

// Create registra una auditoría. AuditCode se genera si falta; las métricas
// derivadas del request se descartan y se recalculan.
func (uc *AuditUseCase) Create(ctx context.Context, vendorID string, in dto.CreateAuditRequest) (*entity.InternalAudit, error) {
	if strings.TrimSpace(in.AuditName) == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.AuditStatusPlanned
	}
	if !validAuditStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	for _, f := range in.Findings {
		if !validFindingSeverity[f.Severity] {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	code := in.AuditCode
	if code == "" {
		code = newAuditCode(now)
	}
	audit := &entity.InternalAudit{
		ID:                uuid.New().String(),
		VendorID:          vendorID,
		AuditName:         in.AuditName,
		AuditCode:         code,
		AuditType:         in.AuditType,
		Scope:             in.Scope,
		Objectives:        in.Objectives,
		StandardsChecked:  in.StandardsChecked,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Status:            status,
		Auditors:          in.Auditors,
		AuditOwner:        in.AuditOwner,
		Checklist:         in.Checklist,
		Evidence:          in.Evidence,
		Findings:          in.Findings,
		CorrectiveActions: in.CorrectiveActions,
		IsConfidential:    in.IsConfidential,
		Tags:              in.Tags,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for i := range audit.Findings {
		stampFinding(&audit.Findings[i], now)
	}
	if err := uc.checkEmployees(ctx, vendorID, audit); err != nil {
		return nil, err
	}
	audit.RecalculateMetrics()

	if err := uc.repo.Create(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// Get devuelve una auditoría del vendor.
func (uc *AuditUseCase) Get(ctx context.Context, vendorID, id string) (*entity.InternalAudit, error) {
	audit, err := uc.repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, domain.ErrNotFound
	}
	return audit, nil
}

// List lista las auditorías del vendor, más recientes primero.
func (uc *AuditUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.InternalAudit, error) {
	page.DefaultPage()
	return uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
}

// Update reemplaza el contenido de una auditoría. Conserva ID, AuditCode y
// CreatedAt; las métricas derivadas del request se descartan y se recalculan.
// Una auditoría cancelada no admite reemplazo que la reviva.
func (uc *AuditUseCase) Update(ctx context.Context, vendorID, id string, in dto.CreateAuditRequest) (*entity.InternalAudit, error) {
	if strings.TrimSpace(in.AuditName) == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.AuditStatusPlanned
	}
	if !validAuditStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	for _, f := range in.Findings {
		if !validFindingSeverity[f.Severity] {
			return nil, domain.ErrInvalidInput
		}
	}

	current, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if current.Status == entity.AuditStatusCancelled && status != entity.AuditStatusCancelled {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	audit := &entity.InternalAudit{
		ID:                current.ID,
		VendorID:          vendorID,
		AuditName:         in.AuditName,
		AuditCode:         current.AuditCode,
		AuditType:         in.AuditType,
		Scope:             in.Scope,
		Objectives:        in.Objectives,
		StandardsChecked:  in.StandardsChecked,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Status:            status,
		Auditors:          in.Auditors,
		AuditOwner:        in.AuditOwner,
		Checklist:         in.Checklist,
		Evidence:          in.Evidence,
		Findings:          in.Findings,
		CorrectiveActions: in.CorrectiveActions,
		IsConfidential:    in.IsConfidential,
		Tags:              in.Tags,
		Notes:             in.Notes,
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         now,
	}
	for i := range audit.Findings {
		stampFinding(&audit.Findings[i], now)
	}
	if err := uc.checkEmployees(ctx, vendorID, audit); err != nil {
		return nil, err
	}
	audit.RecalculateMetrics()

	if err := uc.repo.Update(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// UpdateStatus cambia el estado del ciclo de vida. Cancelled es terminal.
func (uc *AuditUseCase) UpdateStatus(ctx context.Context, vendorID, id string, in dto.UpdateAuditStatusRequest) (*entity.InternalAudit, error) {
	if !validAuditStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	audit, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if audit.Status == entity.AuditStatusCancelled && in.Status != entity.AuditStatusCancelled {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(ctx, vendorID, id, in.Status); err != nil {
		return nil, err
	}
	audit.Status = in.Status
	return audit, nil
}

// AddFinding agrega un hallazgo y persiste las métricas recalculadas.
func (uc *AuditUseCase) AddFinding(ctx context.Context, vendorID, id string, in dto.AddFindingRequest) (*entity.InternalAudit, error) {
	if strings.TrimSpace(in.Observation) == "" || !validFindingSeverity[in.Severity] {
		return nil, domain.ErrInvalidInput
	}
	audit, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	finding := entity.AuditFinding{
		Observation:    in.Observation,
		RootCause:      in.RootCause,
		Severity:       in.Severity,
		RiskRating:     in.RiskRating,
		Recommendation: in.Recommendation,
		Evidence:       in.Evidence,
		Owner:          in.Owner,
		DueDate:        in.DueDate,
	}
	stampFinding(&finding, now)
	audit.Findings = append(audit.Findings, finding)
	audit.UpdatedAt = now

	if err := uc.checkEmployees(ctx, vendorID, audit); err != nil {
		return nil, err
	}
	audit.RecalculateMetrics()

	if err := uc.repo.AppendFinding(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// Delete elimina una auditoría del vendor.
func (uc *AuditUseCase) Delete(ctx context.Context, vendorID, id string) error {
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, vendorID, id)
}

// checkEmployees verifica que todo empleado referenciado pertenezca al vendor.
func (uc *AuditUseCase) checkEmployees(ctx context.Context, vendorID string, audit *entity.InternalAudit) error {
	ids := audit.ReferencedEmployeeIDs()
	if len(ids) == 0 {
		return nil
	}
	count, err := uc.empRepo.CountByIDs(ctx, vendorID, ids)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return domain.ErrInvalidInput
	}
	return nil
}

// stampFinding asigna id, estado inicial y timestamp si faltan.
func stampFinding(f *entity.AuditFinding, now time.Time) {
	if f.FindingID == "" {
		f.FindingID = fmt.Sprintf("FND-%s", uuid.New().String()[:8])
	}
	if f.Status == "" {
		f.Status = "Open"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
}

// newAuditCode genera un código legible AUD-<año>-<sufijo corto>.
func newAuditCode(now time.Time) string {
	return fmt.Sprintf("AUD-%d-%s", now.Year(), uuid.New().String()[:6])
}
