package repository

import (
	"context"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// KRIRepository persistencia de evaluaciones KRI (inmutables tras crear).
type KRIRepository interface {
	Create(ctx context.Context, assessment *entity.KRIAssessment) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.KRIAssessment, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.KRIAssessment, error)
}

// SiteRiskRepository persistencia de evaluaciones Site Risk.
type SiteRiskRepository interface {
	Create(ctx context.Context, assessment *entity.SiteRiskAssessment) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.SiteRiskAssessment, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.SiteRiskAssessment, error)
}

// BCMPolicyRepository persistencia de análisis de políticas BCM.
type BCMPolicyRepository interface {
	Create(ctx context.Context, analysis *entity.BCMPolicyAnalysis) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.BCMPolicyAnalysis, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.BCMPolicyAnalysis, error)
}
