package entity

import "time"

// Tipos y estados del módulo de auditoría interna.
const (
	AuditStatusPlanned   = "Planned"
	AuditStatusOngoing   = "Ongoing"
	AuditStatusCompleted = "Completed"
	AuditStatusCancelled = "Cancelled"
	AuditStatusReported  = "Reported"
)

// Severidades de hallazgo.
const (
	FindingSeverityLow      = "Low"
	FindingSeverityMedium   = "Medium"
	FindingSeverityHigh     = "High"
	FindingSeverityCritical = "Critical"
)

// AuditChecklistItem un punto de la checklist del plan de auditoría.
type AuditChecklistItem struct {
	Item      string     `json:"item"`
	Status    string     `json:"status"` // Not Checked | Compliant | Non-Compliant | NA
	Notes     string     `json:"notes,omitempty"`
	CheckedBy string     `json:"checkedBy,omitempty"` // employee ID
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

// AuditEvidence una evidencia adjunta (a nivel de auditoría o de hallazgo).
type AuditEvidence struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	MimeType    string    `json:"mimeType,omitempty"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt,omitempty"`
}

// AuditFinding un hallazgo de auditoría. El estado se actualiza por
// transiciones explícitas; el resto del registro es append-only.
type AuditFinding struct {
	FindingID      string          `json:"findingId,omitempty"`
	Observation    string          `json:"observation"`
	RootCause      string          `json:"rootCause,omitempty"`
	Severity       string          `json:"severity"` // ver constantes FindingSeverity*
	RiskRating     int             `json:"riskRating,omitempty"` // 0–100
	Recommendation string          `json:"recommendation,omitempty"`
	Evidence       []AuditEvidence `json:"evidence,omitempty"`
	Owner          string          `json:"owner,omitempty"` // employee ID responsable
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Status         string          `json:"status"` // Open | In Progress | Resolved | Deferred | Closed
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
}

// AuditCorrectiveAction una acción correctiva planificada sobre un hallazgo.
type AuditCorrectiveAction struct {
	ActionID     string     `json:"actionId,omitempty"`
	Description  string     `json:"description"`
	AssignedTo   string     `json:"assignedTo,omitempty"`
	PlannedStart *time.Time `json:"plannedStart,omitempty"`
	PlannedEnd   *time.Time `json:"plannedEnd,omitempty"`
	ActualStart  *time.Time `json:"actualStart,omitempty"`
	ActualEnd    *time.Time `json:"actualEnd,omitempty"`
	Status       string     `json:"status"` // Planned | In Progress | Completed | Blocked
	Notes        string     `json:"notes,omitempty"`
}

// FindingSeveritySummary conteo de hallazgos por severidad. Métrica derivada,
// recalculada en cada escritura.
type FindingSeveritySummary struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// InternalAudit registro maestro de una auditoría interna, con sub-colecciones
// embebidas. TotalFindings, FindingSeveritySummary y OverallAuditScore son
// derivados y se recalculan siempre en servidor antes de persistir.
type InternalAudit struct {
	ID                string
	VendorID          string
	AuditName         string
	AuditCode         string // ej. AUD-2025-001
	AuditType         string // Internal | External | Compliance | Operational | IT | Financial | Health & Safety
	Scope             string
	Objectives        []string
	StandardsChecked  []string
	StartDate         *time.Time
	EndDate           *time.Time
	Status            string // ver constantes AuditStatus*
	Auditors          []string // employee IDs
	AuditOwner        string   // employee ID
	Checklist         []AuditChecklistItem
	Evidence          []AuditEvidence
	Findings          []AuditFinding
	CorrectiveActions []AuditCorrectiveAction

	TotalFindings          int
	FindingSeveritySummary FindingSeveritySummary
	OverallAuditScore      int // 0–100

	IsConfidential bool
	Tags           []string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalculateMetrics recalcula las métricas derivadas a partir de los
// hallazgos actuales: total, resumen por severidad y score heurístico
// 100 − 2·medium − 5·high − 10·critical acotado a [0, 100].
func (a *InternalAudit) RecalculateMetrics() {
	summary := FindingSeveritySummary{}
	for _, f := range a.Findings {
		switch f.Severity {
		case FindingSeverityLow:
			summary.Low++
		case FindingSeverityMedium:
			summary.Medium++
		case FindingSeverityHigh:
			summary.High++
		case FindingSeverityCritical:
			summary.Critical++
		}
	}
	a.TotalFindings = len(a.Findings)
	a.FindingSeveritySummary = summary

	score := 100 - (summary.Medium*2 + summary.High*5 + summary.Critical*10)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	a.OverallAuditScore = score
}

// ReferencedEmployeeIDs devuelve los IDs de empleados referenciados
// (auditores, owner y owners de hallazgos), sin duplicados ni vacíos.
// Todos deben pertenecer al vendor de la auditoría.
func (a *InternalAudit) ReferencedEmployeeIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range a.Auditors {
		add(id)
	}
	add(a.AuditOwner)
	for _, f := range a.Findings {
		add(f.Owner)
	}
	return ids
}
