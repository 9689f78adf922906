package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
	"github.com/vendorsahyog/riskguard-api/internal/application/riskai"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// bcmAnalyzer subconjunto del delegado de IA para análisis BCM.
type bcmAnalyzer interface {
	AnalyzeBCMPolicy(ctx context.Context, policyText string) (*riskai.BCMResult, error)
	ModelName() string
}

// BCMUseCase casos de uso del módulo de análisis de políticas BCM
// (continuidad de negocio, ISO 22301).
type BCMUseCase struct {
	repo      repository.BCMPolicyRepository
	analyzer  bcmAnalyzer
	extractor ports.TextExtractor
}

// NewBCMUseCase construye el caso de uso BCM.
func NewBCMUseCase(repo repository.BCMPolicyRepository, analyzer bcmAnalyzer, extractor ports.TextExtractor) *BCMUseCase {
	return &BCMUseCase{repo: repo, analyzer: analyzer, extractor: extractor}
}

// AnalyzeUpload extrae el texto de un archivo subido (.pdf o .txt), lo
// analiza contra ISO 22301 y persiste el resultado.
func (uc *BCMUseCase) AnalyzeUpload(ctx context.Context, vendorID, vendorCode, filename string, data []byte) (*entity.BCMPolicyAnalysis, error) {
	if filename == "" || len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	text, err := uc.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}
	source := entity.BCMPolicySource{
		SourceType: "UPLOAD",
		Filename:   filename,
		FileType:   strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
		RawText:    text,
	}
	return uc.analyze(ctx, vendorID, vendorCode, entity.InputModeUpload, source)
}

// AnalyzeText analiza una política enviada como texto plano.
func (uc *BCMUseCase) AnalyzeText(ctx context.Context, vendorID, vendorCode string, in dto.AnalyzeBCMPolicyRequest) (*entity.BCMPolicyAnalysis, error) {
	if strings.TrimSpace(in.RawTextInput) == "" {
		return nil, domain.ErrInvalidInput
	}
	source := entity.BCMPolicySource{
		SourceType: "PLAINTEXT",
		RawText:    in.RawTextInput,
	}
	return uc.analyze(ctx, vendorID, vendorCode, entity.InputModeText, source)
}

func (uc *BCMUseCase) analyze(ctx context.Context, vendorID, vendorCode, inputMode string, source entity.BCMPolicySource) (*entity.BCMPolicyAnalysis, error) {
	if strings.TrimSpace(source.RawText) == "" {
		return nil, domain.ErrInvalidInput
	}

	result, err := uc.analyzer.AnalyzeBCMPolicy(ctx, source.RawText)
	if err != nil {
		return nil, err
	}

	analysis := &entity.BCMPolicyAnalysis{
		ID:                uuid.New().String(),
		VendorID:          vendorID,
		VendorCode:        vendorCode,
		InputMode:         inputMode,
		PolicySource:      source,
		ExtractedClauses:  result.ExtractedClauses,
		GapAnalysis:       result.GapAnalysis,
		RegeneratedPolicy: result.RegeneratedPolicy,
		GeneratedByAI:     true,
		AIModelUsed:       uc.analyzer.ModelName(),
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// Get devuelve un análisis del vendor.
func (uc *BCMUseCase) Get(ctx context.Context, vendorID, id string) (*entity.BCMPolicyAnalysis, error) {
	analysis, err := uc.repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, domain.ErrNotFound
	}
	return analysis, nil
}

// List lista los análisis del vendor, más recientes primero.
func (uc *BCMUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.BCMPolicyAnalysis, error) {
	page.DefaultPage()
	return uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
}
