package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.BCMPolicyRepository = (*BCMPolicyRepo)(nil)

const bcmColumns = `id, vendor_id, vendor_code, input_mode, policy_source, extracted_clauses,
	gap_analysis, regenerated_policy, generated_by_ai, ai_model_used, created_at`

// BCMPolicyRepo implementación de BCMPolicyRepository.
type BCMPolicyRepo struct {
	q Querier
}

// NewBCMPolicyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBCMPolicyRepository(q Querier) *BCMPolicyRepo {
	return &BCMPolicyRepo{q: q}
}

// Create persiste un análisis de política BCM.
func (r *BCMPolicyRepo) Create(ctx context.Context, analysis *entity.BCMPolicyAnalysis) error {
	source, err := toJSONB(analysis.PolicySource)
	if err != nil {
		return fmt.Errorf("serializar fuente: %w", err)
	}
	clauses, err := toJSONB(analysis.ExtractedClauses)
	if err != nil {
		return fmt.Errorf("serializar cláusulas: %w", err)
	}
	gaps, err := toJSONB(analysis.GapAnalysis)
	if err != nil {
		return fmt.Errorf("serializar gaps: %w", err)
	}
	regenerated, err := toJSONB(analysis.RegeneratedPolicy)
	if err != nil {
		return fmt.Errorf("serializar política regenerada: %w", err)
	}
	query := `
		INSERT INTO bcm_policy_analyses (` + bcmColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		analysis.ID, analysis.VendorID, analysis.VendorCode, analysis.InputMode,
		source, clauses, gaps, regenerated,
		analysis.GeneratedByAI, analysis.AIModelUsed, analysis.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bcm analysis: %w", err)
	}
	return nil
}

// GetByID obtiene un análisis del vendor. (nil, nil) si no existe.
func (r *BCMPolicyRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.BCMPolicyAnalysis, error) {
	query := `
		SELECT ` + bcmColumns + `
		FROM bcm_policy_analyses WHERE vendor_id = $1 AND id = $2`
	analysis, err := scanBCM(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bcm analysis: %w", err)
	}
	return analysis, nil
}

// ListByVendor lista análisis del vendor, más recientes primero.
func (r *BCMPolicyRepo) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.BCMPolicyAnalysis, error) {
	query := `
		SELECT ` + bcmColumns + `
		FROM bcm_policy_analyses WHERE vendor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bcm analyses: %w", err)
	}
	defer rows.Close()
	var list []*entity.BCMPolicyAnalysis
	for rows.Next() {
		analysis, err := scanBCM(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bcm analysis: %w", err)
		}
		list = append(list, analysis)
	}
	return list, rows.Err()
}

func scanBCM(row interface{ Scan(...any) error }) (*entity.BCMPolicyAnalysis, error) {
	var a entity.BCMPolicyAnalysis
	var source, clauses, gaps, regenerated []byte
	err := row.Scan(
		&a.ID, &a.VendorID, &a.VendorCode, &a.InputMode,
		&source, &clauses, &gaps, &regenerated,
		&a.GeneratedByAI, &a.AIModelUsed, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(source, &a.PolicySource); err != nil {
		return nil, fmt.Errorf("deserializar fuente: %w", err)
	}
	if err := fromJSONB(clauses, &a.ExtractedClauses); err != nil {
		return nil, fmt.Errorf("deserializar cláusulas: %w", err)
	}
	if err := fromJSONB(gaps, &a.GapAnalysis); err != nil {
		return nil, fmt.Errorf("deserializar gaps: %w", err)
	}
	if err := fromJSONB(regenerated, &a.RegeneratedPolicy); err != nil {
		return nil, fmt.Errorf("deserializar política regenerada: %w", err)
	}
	return &a, nil
}
