package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.KRIRepository = (*KRIRepo)(nil)

const kriColumns = `id, vendor_id, vendor_code, input_mode, raw_text_input, structured_input,
	extracted_context, risks, generated_by_ai, ai_model_used, created_at`

// KRIRepo implementación de KRIRepository. Entrada estructurada, contexto
// extraído y riesgos se guardan como JSONB; el registro es inmutable.
type KRIRepo struct {
	q Querier
}

// NewKRIRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKRIRepository(q Querier) *KRIRepo {
	return &KRIRepo{q: q}
}

// Create persiste una evaluación KRI.
func (r *KRIRepo) Create(ctx context.Context, assessment *entity.KRIAssessment) error {
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
		INSERT INTO kri_assessments (` + kriColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		assessment.ID, assessment.VendorID, assessment.VendorCode, assessment.InputMode,
		assessment.RawTextInput, structured, contextRaw, risks,
		assessment.GeneratedByAI, assessment.AIModelUsed, assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kri assessment: %w", err)
	}
	return nil
}

// GetByID obtiene una evaluación del vendor. (nil, nil) si no existe.
func (r *KRIRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.KRIAssessment, error) {
	query := `
		SELECT ` + kriColumns + `
		FROM kri_assessments WHERE vendor_id = $1 AND id = $2`
	assessment, err := scanKRI(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kri assessment: %w", err)
	}
	return assessment, nil
}

// ListByVendor lista evaluaciones del vendor, más recientes primero.
func (r *KRIRepo) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.KRIAssessment, error) {
	query := `
		SELECT ` + kriColumns + `
		FROM kri_assessments WHERE vendor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kri assessments: %w", err)
	}
	defer rows.Close()
	var list []*entity.KRIAssessment
	for rows.Next() {
		assessment, err := scanKRI(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kri assessment: %w", err)
		}
		list = append(list, assessment)
	}
	return list, rows.Err()
}

func scanKRI(row interface{ Scan(...any) error }) (*entity.KRIAssessment, error) {
	var a entity.KRIAssessment
	var structured, contextRaw, risks []byte
	err := row.Scan(
		&a.ID, &a.VendorID, &a.VendorCode, &a.InputMode, &a.RawTextInput,
		&structured, &contextRaw, &risks, &a.GeneratedByAI, &a.AIModelUsed, &a.CreatedAt,
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
