package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.SiteRiskRepository = (*SiteRiskRepo)(nil)

const siteRiskColumns = `id, vendor_id, vendor_code, input_mode, raw_text_input, structured_input,
	extracted_context, risks, overall_risk_score, compliance_status, generated_by_ai,
	ai_model_used, created_at`

// SiteRiskRepo implementación de SiteRiskRepository.
type SiteRiskRepo struct {
	q Querier
}

// NewSiteRiskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSiteRiskRepository(q Querier) *SiteRiskRepo {
	return &SiteRiskRepo{q: q}
}

// Create persiste una evaluación de sitio.
func (r *SiteRiskRepo) Create(ctx context.Context, assessment *entity.SiteRiskAssessment) error {
	contextRaw, err := toJSONB(assessment.ExtractedContext)
	if err != nil {
		return fmt.Errorf("serializar contexto: %w", err)
	}
	risks, err := toJSONB(assessment.Risks)
	if err != nil {
		return fmt.Errorf("serializar riesgos: %w", err)
	}
	structured := []byte(assessment.StructuredInput)
	if len(structured) == 0 {
		structured = []byte("null")
	}
	query := `
		INSERT INTO site_risk_assessments (` + siteRiskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		assessment.ID, assessment.VendorID, assessment.VendorCode, assessment.InputMode,
		assessment.RawTextInput, structured, contextRaw, risks,
		assessment.OverallRiskScore, assessment.ComplianceStatus,
		assessment.GeneratedByAI, assessment.AIModelUsed, assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert site risk assessment: %w", err)
	}
	return nil
}

// GetByID obtiene una evaluación del vendor. (nil, nil) si no existe.
func (r *SiteRiskRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.SiteRiskAssessment, error) {
	query := `
		SELECT ` + siteRiskColumns + `
		FROM site_risk_assessments WHERE vendor_id = $1 AND id = $2`
	assessment, err := scanSiteRisk(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site risk assessment: %w", err)
	}
	return assessment, nil
}

// ListByVendor lista evaluaciones del vendor, más recientes primero.
func (r *SiteRiskRepo) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.SiteRiskAssessment, error) {
	query := `
		SELECT ` + siteRiskColumns + `
		FROM site_risk_assessments WHERE vendor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list site risk assessments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SiteRiskAssessment
	for rows.Next() {
		assessment, err := scanSiteRisk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan site risk assessment: %w", err)
		}
		list = append(list, assessment)
	}
	return list, rows.Err()
}

func scanSiteRisk(row interface{ Scan(...any) error }) (*entity.SiteRiskAssessment, error) {
	var a entity.SiteRiskAssessment
	var structured, contextRaw, risks []byte
	err := row.Scan(
		&a.ID, &a.VendorID, &a.VendorCode, &a.InputMode, &a.RawTextInput,
		&structured, &contextRaw, &risks, &a.OverallRiskScore, &a.ComplianceStatus,
		&a.GeneratedByAI, &a.AIModelUsed, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(structured) > 0 && string(structured) != "null" {
		a.StructuredInput = structured
	}
	if err := fromJSONB(contextRaw, &a.ExtractedContext); err != nil {
		return nil, fmt.Errorf("deserializar contexto: %w", err)
	}
	if err := fromJSONB(risks, &a.Risks); err != nil {
		return nil, fmt.Errorf("deserializar riesgos: %w", err)
	}
	return &a, nil
}
