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

// kriGenerator subconjunto del delegado de IA que necesita este caso de uso.
type kriGenerator interface {
	GenerateKRIs(ctx context.Context, input any) (*riskai.KRIResult, error)
	ModelName() string
}

// KRIUseCase casos de uso del módulo Key Risk Indicators.
type KRIUseCase struct {
	repo repository.KRIRepository
	gen  kriGenerator
}

// NewKRIUseCase construye el caso de uso KRI.
func NewKRIUseCase(repo repository.KRIRepository, gen kriGenerator) *KRIUseCase {
	return &KRIUseCase{repo: repo, gen: gen}
}

// Create valida la unión TEXT|STRUCTURED, delega la generación de riesgos al
// modelo y persiste la evaluación completa. El registro es inmutable.
func (uc *KRIUseCase) Create(ctx context.Context, vendorID, vendorCode string, in dto.CreateKRIRequest) (*entity.KRIAssessment, error) {
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

	result, err := uc.gen.GenerateKRIs(ctx, input)
	if err != nil {
		return nil, err
	}

	assessment := &entity.KRIAssessment{
		ID:               uuid.New().String(),
		VendorID:         vendorID,
		VendorCode:       vendorCode,
		InputMode:        in.InputMode,
		RawTextInput:     in.RawTextInput,
		StructuredInput:  structuredRaw,
		ExtractedContext: result.ExtractedContext,
		Risks:            result.Risks,
		GeneratedByAI:    true,
		AIModelUsed:      uc.gen.ModelName(),
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// Get devuelve una evaluación del vendor. ErrNotFound si no existe o
// pertenece a otro vendor.
func (uc *KRIUseCase) Get(ctx context.Context, vendorID, id string) (*entity.KRIAssessment, error) {
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
func (uc *KRIUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.KRIAssessment, error) {
	page.DefaultPage()
	return uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
}
