package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/riskai"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// siteRiskGenerator subconjunto del delegado de IA para Site Risk.
type siteRiskGenerator interface {
	GenerateSiteRisk(ctx context.Context, input any) (*riskai.SiteRiskResult, error)
	ModelName() string
}

// SiteRiskUseCase casos de uso del módulo de riesgo de sitio físico.
type SiteRiskUseCase struct {
	repo repository.SiteRiskRepository
	gen  siteRiskGenerator
}

// NewSiteRiskUseCase construye el caso de uso Site Risk.
func NewSiteRiskUseCase(repo repository.SiteRiskRepository, gen siteRiskGenerator) *SiteRiskUseCase {
	return &SiteRiskUseCase{repo: repo, gen: gen}
}

// Create valida la unión TEXT|STRUCTURED, genera la evaluación del sitio con
// el modelo y la persiste con score global y estado de cumplimiento.
func (uc *SiteRiskUseCase) Create(ctx context.Context, vendorID, vendorCode string, in dto.CreateSiteRiskRequest) (*entity.SiteRiskAssessment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var input any
	var structuredRaw json.RawMessage
	if in.InputMode == entity.InputModeText {
		input = map[string]string{"rawTextInput": in.RawTextInput}
	} else {
		input = in.StructuredInput
		raw, err := json.Marshal(in.StructuredInput)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		structuredRaw = raw
	}

	result, err := uc.gen.GenerateSiteRisk(ctx, input)
	if err != nil {
		return nil, err
	}

	assessment := &entity.SiteRiskAssessment{
		ID:               uuid.New().String(),
		VendorID:         vendorID,
		VendorCode:       vendorCode,
		InputMode:        in.InputMode,
		RawTextInput:     in.RawTextInput,
		StructuredInput:  structuredRaw,
		ExtractedContext: result.ExtractedContext,
		Risks:            result.Risks,
		OverallRiskScore: result.OverallRiskScore,
		ComplianceStatus: result.ComplianceStatus,
		GeneratedByAI:    true,
		AIModelUsed:      uc.gen.ModelName(),
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// Get devuelve una evaluación del vendor.
func (uc *SiteRiskUseCase) Get(ctx context.Context, vendorID, id string) (*entity.SiteRiskAssessment, error) {
	assessment, err := uc.repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, domain.ErrNotFound
	}
	return assessment, nil
}

// List lista las evaluaciones del vendor, más recientes primero.
func (uc *SiteRiskUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.SiteRiskAssessment, error) {
	page.DefaultPage()
	return uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
}
