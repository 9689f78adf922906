package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.InternalAuditRepository = (*InternalAuditRepo)(nil)

const auditColumns = `id, vendor_id, audit_name, audit_code, audit_type, scope, objectives,
	standards_checked, start_date, end_date, status, auditors, audit_owner, checklist,
	evidence, findings, corrective_actions, total_findings, severity_summary,
	overall_audit_score, is_confidential, tags, notes, created_at, updated_at`

// InternalAuditRepo implementación de InternalAuditRepository. Las
// sub-colecciones (checklist, evidencia, hallazgos, acciones) y las métricas
// resumidas viven en columnas JSONB del registro maestro.
type InternalAuditRepo struct {
	q Querier
}

// NewInternalAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInternalAuditRepository(q Querier) *InternalAuditRepo {
	return &InternalAuditRepo{q: q}
}

// Create persiste una auditoría completa.
func (r *InternalAuditRepo) Create(ctx context.Context, audit *entity.InternalAudit) error {
	cols, err := auditJSONColumns(audit)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO internal_audits (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err = r.q.Exec(ctx, query,
		audit.ID, audit.VendorID, audit.AuditName, audit.AuditCode, audit.AuditType,
		audit.Scope, cols.objectives, cols.standards, audit.StartDate, audit.EndDate,
		audit.Status, cols.auditors, audit.AuditOwner, cols.checklist, cols.evidence,
		cols.findings, cols.actions, audit.TotalFindings, cols.summary,
		audit.OverallAuditScore, audit.IsConfidential, cols.tags, audit.Notes,
		audit.CreatedAt, audit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// GetByID obtiene una auditoría del vendor. (nil, nil) si no existe.
func (r *InternalAuditRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.InternalAudit, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM internal_audits WHERE vendor_id = $1 AND id = $2`
	audit, err := scanAudit(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return audit, nil
}

// ListByVendor lista las auditorías del vendor, más recientes primero.
func (r *InternalAuditRepo) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.InternalAudit, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM internal_audits WHERE vendor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()
	var list []*entity.InternalAudit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		list = append(list, audit)
	}
	return list, rows.Err()
}

// Update reemplaza el registro completo (última escritura gana).
func (r *InternalAuditRepo) Update(ctx context.Context, audit *entity.InternalAudit) error {
	cols, err := auditJSONColumns(audit)
	if err != nil {
		return err
	}
	query := `
		UPDATE internal_audits SET
			audit_name = $3, audit_code = $4, audit_type = $5, scope = $6,
			objectives = $7, standards_checked = $8, start_date = $9, end_date = $10,
			status = $11, auditors = $12, audit_owner = $13, checklist = $14,
			evidence = $15, findings = $16, corrective_actions = $17,
			total_findings = $18, severity_summary = $19, overall_audit_score = $20,
			is_confidential = $21, tags = $22, notes = $23, updated_at = $24
		WHERE vendor_id = $1 AND id = $2`
	_, err = r.q.Exec(ctx, query,
		audit.VendorID, audit.ID, audit.AuditName, audit.AuditCode, audit.AuditType,
		audit.Scope, cols.objectives, cols.standards, audit.StartDate, audit.EndDate,
		audit.Status, cols.auditors, audit.AuditOwner, cols.checklist, cols.evidence,
		cols.findings, cols.actions, audit.TotalFindings, cols.summary,
		audit.OverallAuditScore, audit.IsConfidential, cols.tags, audit.Notes,
		audit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado del ciclo de vida.
func (r *InternalAuditRepo) UpdateStatus(ctx context.Context, vendorID, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE internal_audits SET status = $3, updated_at = NOW() WHERE vendor_id = $1 AND id = $2`,
		vendorID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update audit status: %w", err)
	}
	return nil
}

// Delete elimina una auditoría del vendor.
func (r *InternalAuditRepo) Delete(ctx context.Context, vendorID, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM internal_audits WHERE vendor_id = $1 AND id = $2`,
		vendorID, id,
	)
	if err != nil {
		return fmt.Errorf("delete audit: %w", err)
	}
	return nil
}

// AppendFinding persiste los hallazgos y las métricas recalculadas en una
// sola escritura.
func (r *InternalAuditRepo) AppendFinding(ctx context.Context, audit *entity.InternalAudit) error {
	findings, err := toJSONB(audit.Findings)
	if err != nil {
		return fmt.Errorf("serializar hallazgos: %w", err)
	}
	summary, err := toJSONB(audit.FindingSeveritySummary)
	if err != nil {
		return fmt.Errorf("serializar resumen: %w", err)
	}
	query := `
		UPDATE internal_audits SET
			findings = $3, total_findings = $4, severity_summary = $5,
			overall_audit_score = $6, updated_at = $7
		WHERE vendor_id = $1 AND id = $2`
	_, err = r.q.Exec(ctx, query,
		audit.VendorID, audit.ID, findings, audit.TotalFindings, summary,
		audit.OverallAuditScore, audit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("append finding: %w", err)
	}
	return nil
}

// auditJSON agrupa las columnas JSONB serializadas de una auditoría.
type auditJSON struct {
	objectives, standards, auditors, checklist, evidence, findings, actions, summary, tags []byte
}

func auditJSONColumns(audit *entity.InternalAudit) (*auditJSON, error) {
	var cols auditJSON
	var err error
	fields := []struct {
		name string
		dst  *[]byte
		src  any
	}{
		{"objectives", &cols.objectives, audit.Objectives},
		{"standards", &cols.standards, audit.StandardsChecked},
		{"auditors", &cols.auditors, audit.Auditors},
		{"checklist", &cols.checklist, audit.Checklist},
		{"evidence", &cols.evidence, audit.Evidence},
		{"findings", &cols.findings, audit.Findings},
		{"actions", &cols.actions, audit.CorrectiveActions},
		{"summary", &cols.summary, audit.FindingSeveritySummary},
		{"tags", &cols.tags, audit.Tags},
	}
	for _, f := range fields {
		if *f.dst, err = toJSONB(f.src); err != nil {
			return nil, fmt.Errorf("serializar %s: %w", f.name, err)
		}
	}
	return &cols, nil
}

func scanAudit(row interface{ Scan(...any) error }) (*entity.InternalAudit, error) {
	var a entity.InternalAudit
	var objectives, standards, auditors, checklist, evidence, findings, actions, summary, tags []byte
	err := row.Scan(
		&a.ID, &a.VendorID, &a.AuditName, &a.AuditCode, &a.AuditType, &a.Scope,
		&objectives, &standards, &a.StartDate, &a.EndDate, &a.Status,
		&auditors, &a.AuditOwner, &checklist, &evidence, &findings, &actions,
		&a.TotalFindings, &summary, &a.OverallAuditScore, &a.IsConfidential,
		&tags, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	pairs := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"objectives", objectives, &a.Objectives},
		{"standards", standards, &a.StandardsChecked},
		{"auditors", auditors, &a.Auditors},
		{"checklist", checklist, &a.Checklist},
		{"evidence", evidence, &a.Evidence},
		{"findings", findings, &a.Findings},
		{"actions", actions, &a.CorrectiveActions},
		{"summary", summary, &a.FindingSeveritySummary},
		{"tags", tags, &a.Tags},
	}
	for _, p := range pairs {
		if err := fromJSONB(p.raw, p.dst); err != nil {
			return nil, fmt.Errorf("deserializar %s: %w", p.name, err)
		}
	}
	return &a, nil
}
