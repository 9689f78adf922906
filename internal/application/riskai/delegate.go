package riskai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// defaultTimeout acota cada llamada al LLM. Si el modelo no responde a
// tiempo el error sale como domain.ErrAIUnavailable; no hay reintento
// automático, el caller decide si reintenta.
const defaultTimeout = 10 * time.Second

// Delegate normaliza la entrada de negocio en un prompt con contrato fijo,
// invoca el servicio de completado y parsea la respuesta de forma estricta.
// No persiste nada: guardar el resultado es responsabilidad del caller.
type Delegate struct {
	svc     ports.CompletionService
	timeout time.Duration
}

// NewDelegate construye el delegado inyectando el puerto de completado.
func NewDelegate(svc ports.CompletionService) *Delegate {
	return &Delegate{svc: svc, timeout: defaultTimeout}
}

// ModelName expone el modelo del adaptador para estampar aiModelUsed.
func (d *Delegate) ModelName() string {
	return d.svc.ModelName()
}

// ── Resultados por módulo ─────────────────────────────────────────────────────

// KRIResult salida parseada y validada del módulo KRI.
type KRIResult struct {
	ExtractedContext entity.ExtractedContext `json:"extractedContext"`
	Risks            []entity.KRIRisk        `json:"risks"`
}

// SiteRiskResult salida parseada y validada del módulo Site Risk.
type SiteRiskResult struct {
	ExtractedContext entity.ExtractedContext `json:"extractedContext"`
	Risks            []entity.SiteRiskEntry  `json:"risks"`
	OverallRiskScore int                     `json:"overallRiskScore"`
	ComplianceStatus string                  `json:"complianceStatus"`
}

// BCMResult salida parseada del análisis de políticas BCM.
type BCMResult struct {
	ExtractedClauses  []entity.BCMClause          `json:"extractedClauses"`
	GapAnalysis       entity.BCMGapAnalysis       `json:"gapAnalysis"`
	RegeneratedPolicy entity.BCMRegeneratedPolicy `json:"regeneratedPolicy"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// GenerateKRIs genera los riesgos clave a partir de la entrada normalizada
// (texto libre envuelto o cuestionario estructurado).
func (d *Delegate) GenerateKRIs(ctx context.Context, input any) (*KRIResult, error) {
	prompt, err := buildKRIPrompt(input)
	if err != nil {
		return nil, err
	}

	raw, err := d.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result KRIResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseParse, err)
	}
	if len(result.Risks) == 0 {
		return nil, fmt.Errorf("%w: el modelo no devolvió riesgos", domain.ErrAIResponseParse)
	}
	for i := range result.Risks {
		r := &result.Risks[i]
		if err := checkScale(r.Impact, r.Likelihood); err != nil {
			return nil, err
		}
		// El score siempre se recalcula en servidor; el del modelo es sugerido.
		r.RiskScore = r.Impact * r.Likelihood
	}
	if result.ExtractedContext == nil {
		result.ExtractedContext = entity.ExtractedContext{}
	}
	return &result, nil
}

// GenerateSiteRisk genera la evaluación de riesgo de sitio.
func (d *Delegate) GenerateSiteRisk(ctx context.Context, input any) (*SiteRiskResult, error) {
	prompt, err := buildSiteRiskPrompt(input)
	if err != nil {
		return nil, err
	}

	raw, err := d.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result SiteRiskResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseParse, err)
	}
	if len(result.Risks) == 0 {
		return nil, fmt.Errorf("%w: el modelo no devolvió riesgos", domain.ErrAIResponseParse)
	}
	for i := range result.Risks {
		r := &result.Risks[i]
		if err := checkScale(r.Severity, r.Likelihood); err != nil {
			return nil, err
		}
		r.RiskScore = r.Severity * r.Likelihood
	}
	if result.OverallRiskScore <= 0 {
		return nil, fmt.Errorf("%w: overallRiskScore debe ser un entero positivo", domain.ErrAIResponseParse)
	}
	switch result.ComplianceStatus {
	case entity.ComplianceCompliant, entity.CompliancePartiallyCompliant, entity.ComplianceNonCompliant:
	default:
		return nil, fmt.Errorf("%w: complianceStatus %q fuera del enum", domain.ErrAIResponseParse, result.ComplianceStatus)
	}
	if result.ExtractedContext == nil {
		result.ExtractedContext = entity.ExtractedContext{}
	}
	return &result, nil
}

// AnalyzeBCMPolicy analiza el texto de una política BCM contra ISO 22301.
func (d *Delegate) AnalyzeBCMPolicy(ctx context.Context, policyText string) (*BCMResult, error) {
	raw, err := d.complete(ctx, buildBCMPrompt(policyText))
	if err != nil {
		return nil, err
	}

	var result BCMResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseParse, err)
	}
	if len(result.ExtractedClauses) == 0 {
		return nil, fmt.Errorf("%w: el modelo no devolvió cláusulas", domain.ErrAIResponseParse)
	}
	return &result, nil
}

// ── Internos ──────────────────────────────────────────────────────────────────

// complete ejecuta la llamada externa con timeout acotado y limpia la
// respuesta a un objeto JSON. Un fallo de red/timeout se clasifica como
// ErrAIUnavailable; un texto sin JSON como ErrAIResponseParse.
func (d *Delegate) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	raw, err := d.svc.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	clean := extractJSON(raw)
	if clean == "" {
		return "", fmt.Errorf("%w: la respuesta no contiene un objeto JSON", domain.ErrAIResponseParse)
	}
	return clean, nil
}

// checkScale valida que ambos factores estén en la escala documentada 1–5.
func checkScale(a, b int) error {
	if a < 1 || a > 5 || b < 1 || b > 5 {
		return fmt.Errorf("%w: severidad/probabilidad fuera de la escala 1-5", domain.ErrAIResponseParse)
	}
	return nil
}
