package entity

import (
	"encoding/json"
	"time"
)

// Modos de entrada de los módulos asistidos por IA.
const (
	InputModeText       = "TEXT"
	InputModeStructured = "STRUCTURED"
	InputModeUpload     = "UPLOAD"
)

// ExtractedContext blob abierto devuelto por el modelo. El shape varía por
// módulo y el frontend lo consume de forma opaca, por eso no se tipa.
type ExtractedContext map[string]any

// KRIRisk un riesgo identificado por el módulo KRI. Escala 1–5 para
// impact/likelihood; RiskScore = Impact × Likelihood (recalculado en servidor).
type KRIRisk struct {
	RiskCategory             string `json:"riskCategory"`
	RiskDomain               string `json:"riskDomain"`
	RiskTitle                string `json:"riskTitle"`
	RiskDescription          string `json:"riskDescription"`
	Impact                   int    `json:"impact"`
	Likelihood               int    `json:"likelihood"`
	RiskScore                int    `json:"riskScore"`
	KeyVulnerability         string `json:"keyVulnerability"`
	BusinessJustification    string `json:"businessJustification"`
	MitigationRecommendation string `json:"mitigationRecommendation"`
}

// KRIAssessment registro persistido del módulo Key Risk Indicators.
// Inmutable una vez creado.
type KRIAssessment struct {
	ID               string
	VendorID         string
	VendorCode       string
	InputMode        string // TEXT | STRUCTURED
	RawTextInput     string
	StructuredInput  json.RawMessage // cuestionario tal como se envió al modelo
	ExtractedContext ExtractedContext
	Risks            []KRIRisk
	GeneratedByAI    bool
	AIModelUsed      string
	CreatedAt        time.Time
}

// SiteRiskEntry un riesgo identificado por el módulo Site Risk. Escala 1–5.
type SiteRiskEntry struct {
	RiskCategory             string `json:"riskCategory"`
	RiskDescription          string `json:"riskDescription"`
	Severity                 int    `json:"severity"`
	Likelihood               int    `json:"likelihood"`
	RiskScore                int    `json:"riskScore"`
	MitigationRecommendation string `json:"mitigationRecommendation"`
}

// Estados de cumplimiento del módulo Site Risk.
const (
	ComplianceCompliant          = "Compliant"
	CompliancePartiallyCompliant = "Partially Compliant"
	ComplianceNonCompliant       = "Non-Compliant"
)

// SiteRiskAssessment registro persistido del módulo Site Risk.
type SiteRiskAssessment struct {
	ID               string
	VendorID         string
	VendorCode       string
	InputMode        string
	RawTextInput     string
	StructuredInput  json.RawMessage
	ExtractedContext ExtractedContext
	Risks            []SiteRiskEntry
	OverallRiskScore int
	ComplianceStatus string // ver constantes Compliance*
	GeneratedByAI    bool
	AIModelUsed      string
	CreatedAt        time.Time
}
