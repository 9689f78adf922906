package entity

import "time"

// BCMClause una cláusula extraída de la política BCM (numeración estilo ISO 22301).
type BCMClause struct {
	Clause          string   `json:"clause"`
	ExistingText    string   `json:"existingText"`
	RequirementText string   `json:"requirementText"`
	Questions       []string `json:"questions"`
}

// BCMGapDetail un gap detectado contra ISO 22301.
type BCMGapDetail struct {
	Clause         string `json:"clause"`
	Requirement    string `json:"requirement"`
	Present        bool   `json:"present"`
	Evidence       string `json:"evidence"`
	GapSeverity    string `json:"gapSeverity"` // Low | Medium | High
	Recommendation string `json:"recommendation"`
}

// BCMGapAnalysis resumen del análisis de gaps.
type BCMGapAnalysis struct {
	Summary      string         `json:"summary"`
	TotalClauses int            `json:"totalClauses"`
	GapsFound    int            `json:"gapsFound"`
	Details      []BCMGapDetail `json:"details"`
}

// BCMRegeneratedClause propuesta de redacción mejorada para una cláusula.
type BCMRegeneratedClause struct {
	Clause                 string   `json:"clause"`
	ExistingText           string   `json:"existingText"`
	NewText                string   `json:"newText"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

// BCMRegeneratedPolicy política regenerada por el modelo.
type BCMRegeneratedPolicy struct {
	Clauses []BCMRegeneratedClause `json:"clauses"`
}

// BCMPolicySource origen del texto analizado (archivo subido o texto plano).
type BCMPolicySource struct {
	SourceType string `json:"sourceType"` // UPLOAD | PLAINTEXT
	Filename   string `json:"filename,omitempty"`
	FileType   string `json:"fileType,omitempty"`
	RawText    string `json:"rawText"`
}

// BCMPolicyAnalysis registro persistido del módulo BCM.
type BCMPolicyAnalysis struct {
	ID                string
	VendorID          string
	VendorCode        string
	InputMode         string // UPLOAD | TEXT
	PolicySource      BCMPolicySource
	ExtractedClauses  []BCMClause
	GapAnalysis       BCMGapAnalysis
	RegeneratedPolicy BCMRegeneratedPolicy
	GeneratedByAI     bool
	AIModelUsed       string
	CreatedAt         time.Time
}
