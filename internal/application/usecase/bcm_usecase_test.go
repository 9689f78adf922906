package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/riskai"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

type fakeBCMRepo struct {
	analyses map[string]*entity.BCMPolicyAnalysis
}

func newFakeBCMRepo() *fakeBCMRepo {
	return &fakeBCMRepo{analyses: make(map[string]*entity.BCMPolicyAnalysis)}
}

func (f *fakeBCMRepo) Create(_ context.Context, a *entity.BCMPolicyAnalysis) error {
	f.analyses[a.ID] = a
	return nil
}

func (f *fakeBCMRepo) GetByID(_ context.Context, vendorID, id string) (*entity.BCMPolicyAnalysis, error) {
	a, ok := f.analyses[id]
	if !ok || a.VendorID != vendorID {
		return nil, nil
	}
	return a, nil
}

func (f *fakeBCMRepo) ListByVendor(_ context.Context, vendorID string, _, _ int) ([]*entity.BCMPolicyAnalysis, error) {
	var out []*entity.BCMPolicyAnalysis
	for _, a := range f.analyses {
		if a.VendorID == vendorID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeBCMAnalyzer struct {
	lastText string
	result   *riskai.BCMResult
	err      error
}

func (f *fakeBCMAnalyzer) AnalyzeBCMPolicy(_ context.Context, text string) (*riskai.BCMResult, error) {
	f.lastText = text
	return f.result, f.err
}

func (f *fakeBCMAnalyzer) ModelName() string { return "fake-model" }

// fakeExtractor devuelve texto fijo, o error, sin tocar archivos reales.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ string, _ []byte) (string, error) {
	return f.text, f.err
}

func bcmResult() *riskai.BCMResult {
	return &riskai.BCMResult{
		ExtractedClauses: []entity.BCMClause{{Clause: "4.1", ExistingText: "alcance"}},
		GapAnalysis:      entity.BCMGapAnalysis{Summary: "ok", TotalClauses: 1},
	}
}

func TestBCMAnalyzeUpload_ExtraeYAnaliza(t *testing.T) {
	repo := newFakeBCMRepo()
	analyzer := &fakeBCMAnalyzer{result: bcmResult()}
	uc := NewBCMUseCase(repo, analyzer, &fakeExtractor{text: "texto extraído de la política"})

	a, err := uc.AnalyzeUpload(context.Background(), "vendor-1", "VEN-123456", "politica.PDF", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, entity.InputModeUpload, a.InputMode)
	assert.Equal(t, "UPLOAD", a.PolicySource.SourceType)
	assert.Equal(t, "pdf", a.PolicySource.FileType, "extensión normalizada a minúsculas")
	assert.Equal(t, "texto extraído de la política", analyzer.lastText,
		"al modelo viaja el texto extraído, no los bytes")
	assert.Len(t, repo.analyses, 1)
}

func TestBCMAnalyzeUpload_ExtractorFalla_SePropaga(t *testing.T) {
	uc := NewBCMUseCase(newFakeBCMRepo(), &fakeBCMAnalyzer{result: bcmResult()},
		&fakeExtractor{err: domain.ErrInvalidInput})

	_, err := uc.AnalyzeUpload(context.Background(), "vendor-1", "VEN-123456", "imagen.png", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBCMAnalyzeUpload_ArchivoVacio_EsInvalido(t *testing.T) {
	uc := NewBCMUseCase(newFakeBCMRepo(), &fakeBCMAnalyzer{result: bcmResult()}, &fakeExtractor{text: "x"})

	_, err := uc.AnalyzeUpload(context.Background(), "vendor-1", "VEN-123456", "politica.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBCMAnalyzeText(t *testing.T) {
	repo := newFakeBCMRepo()
	uc := NewBCMUseCase(repo, &fakeBCMAnalyzer{result: bcmResult()}, &fakeExtractor{})

	a, err := uc.AnalyzeText(context.Background(), "vendor-1", "VEN-123456",
		dto.AnalyzeBCMPolicyRequest{RawTextInput: "nuestra política de continuidad"})
	require.NoError(t, err)

	assert.Equal(t, entity.InputModeText, a.InputMode)
	assert.Equal(t, "PLAINTEXT", a.PolicySource.SourceType)
	assert.Empty(t, a.PolicySource.Filename)
}

func TestBCMAnalyzeText_TextoVacio_EsInvalido(t *testing.T) {
	uc := NewBCMUseCase(newFakeBCMRepo(), &fakeBCMAnalyzer{result: bcmResult()}, &fakeExtractor{})

	_, err := uc.AnalyzeText(context.Background(), "vendor-1", "VEN-123456",
		dto.AnalyzeBCMPolicyRequest{RawTextInput: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBCMAnalyze_FalloDeIA_NoPersiste(t *testing.T) {
	repo := newFakeBCMRepo()
	uc := NewBCMUseCase(repo, &fakeBCMAnalyzer{err: domain.ErrAIUnavailable}, &fakeExtractor{})

	_, err := uc.AnalyzeText(context.Background(), "vendor-1", "VEN-123456",
		dto.AnalyzeBCMPolicyRequest{RawTextInput: "texto"})
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	assert.Empty(t, repo.analyses)
}
