package dto

import (
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// CreateAuditRequest request de POST /api/internal-audit. Los campos de
// métricas derivadas no se aceptan del caller; se recalculan en servidor.
type CreateAuditRequest struct {
	AuditName         string                         `json:"auditName"`
	AuditCode         string                         `json:"auditCode,omitempty"`
	AuditType         string                         `json:"auditType,omitempty"`
	Scope             string                         `json:"scope,omitempty"`
	Objectives        StringList                     `json:"objectives,omitempty"`
	StandardsChecked  StringList                     `json:"standardsChecked,omitempty"`
	StartDate         *time.Time                     `json:"startDate,omitempty"`
	EndDate           *time.Time                     `json:"endDate,omitempty"`
	Status            string                         `json:"status,omitempty"`
	Auditors          []string                       `json:"auditors,omitempty"`
	AuditOwner        string                         `json:"auditOwner,omitempty"`
	Checklist         []entity.AuditChecklistItem    `json:"checklist,omitempty"`
	Evidence          []entity.AuditEvidence         `json:"evidence,omitempty"`
	Findings          []entity.AuditFinding          `json:"findings,omitempty"`
	CorrectiveActions []entity.AuditCorrectiveAction `json:"correctiveActions,omitempty"`
	IsConfidential    bool                           `json:"isConfidential"`
	Tags              StringList                     `json:"tags,omitempty"`
	Notes             string                         `json:"notes,omitempty"`
}

// UpdateAuditStatusRequest request de PUT /api/internal-audit/:id/status.
type UpdateAuditStatusRequest struct {
	Status string `json:"status"`
}

// AddFindingRequest request de POST /api/internal-audit/:id/findings.
// FindingID, estado inicial y timestamps los asigna el servidor.
type AddFindingRequest struct {
	Observation    string                 `json:"observation"`
	RootCause      string                 `json:"rootCause,omitempty"`
	Severity       string                 `json:"severity"`
	RiskRating     int                    `json:"riskRating,omitempty"`
	Recommendation string                 `json:"recommendation,omitempty"`
	Evidence       []entity.AuditEvidence `json:"evidence,omitempty"`
	Owner          string                 `json:"owner,omitempty"`
	DueDate        *time.Time             `json:"dueDate,omitempty"`
}
