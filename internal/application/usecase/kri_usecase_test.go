package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/riskai"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

type fakeKRIRepo struct {
	assessments map[string]*entity.KRIAssessment
}

func newFakeKRIRepo() *fakeKRIRepo {
	return &fakeKRIRepo{assessments: make(map[string]*entity.KRIAssessment)}
}

func (f *fakeKRIRepo) Create(_ context.Context, a *entity.KRIAssessment) error {
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeKRIRepo) GetByID(_ context.Context, vendorID, id string) (*entity.KRIAssessment, error) {
	a, ok := f.assessments[id]
	if !ok || a.VendorID != vendorID {
		return nil, nil
	}
	return a, nil
}

func (f *fakeKRIRepo) ListByVendor(_ context.Context, vendorID string, _, _ int) ([]*entity.KRIAssessment, error) {
	var out []*entity.KRIAssessment
	for _, a := range f.assessments {
		if a.VendorID == vendorID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeKRIGen captura el input que recibe el delegado y devuelve un resultado fijo.
type fakeKRIGen struct {
	lastInput any
	result    *riskai.KRIResult
	err       error
}

func (f *fakeKRIGen) GenerateKRIs(_ context.Context, input any) (*riskai.KRIResult, error) {
	f.lastInput = input
	return f.result, f.err
}

func (f *fakeKRIGen) ModelName() string { return "fake-model" }

func kriResult() *riskai.KRIResult {
	return &riskai.KRIResult{
		ExtractedContext: entity.ExtractedContext{"industry": "retail"},
		Risks:            []entity.KRIRisk{{RiskTitle: "x", Impact: 3, Likelihood: 2, RiskScore: 6}},
	}
}

func textKRIRequest(text string) dto.CreateKRIRequest {
	return dto.CreateKRIRequest{
		AIInputEnvelope: dto.AIInputEnvelope{InputMode: entity.InputModeText, RawTextInput: text},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — unión TEXT | STRUCTURED
// ──────────────────────────────────────────────────────────────────────────────

func TestKRICreate_ModoTexto(t *testing.T) {
	repo := newFakeKRIRepo()
	gen := &fakeKRIGen{result: kriResult()}
	uc := NewKRIUseCase(repo, gen)

	a, err := uc.Create(context.Background(), "vendor-1", "VEN-123456", textKRIRequest("empresa retail con 200 empleados"))
	require.NoError(t, err)

	assert.Equal(t, entity.InputModeText, a.InputMode)
	assert.Equal(t, "fake-model", a.AIModelUsed)
	assert.True(t, a.GeneratedByAI)
	assert.Nil(t, a.StructuredInput, "en modo TEXT no se persiste cuestionario")
	assert.Len(t, repo.assessments, 1)

	// El texto libre viaja al modelo envuelto, no pelado.
	wrapped, ok := gen.lastInput.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "empresa retail con 200 empleados", wrapped["rawTextInput"])
}

func TestKRICreate_ModoEstructurado(t *testing.T) {
	uc := NewKRIUseCase(newFakeKRIRepo(), &fakeKRIGen{result: kriResult()})

	in := dto.CreateKRIRequest{
		AIInputEnvelope: dto.AIInputEnvelope{InputMode: entity.InputModeStructured},
		StructuredInput: &dto.KRIStructuredInput{
			BusinessOverview: dto.KRIBusinessOverview{Industry: "Manufacturing"},
		},
	}
	a, err := uc.Create(context.Background(), "vendor-1", "VEN-123456", in)
	require.NoError(t, err)

	require.NotNil(t, a.StructuredInput, "el cuestionario se persiste tal como se envió al modelo")
	var round dto.KRIStructuredInput
	require.NoError(t, json.Unmarshal(a.StructuredInput, &round))
	assert.Equal(t, "Manufacturing", round.BusinessOverview.Industry)
}

func TestKRICreate_AmbasFormas_EsInvalido(t *testing.T) {
	uc := NewKRIUseCase(newFakeKRIRepo(), &fakeKRIGen{result: kriResult()})

	in := textKRIRequest("texto")
	in.StructuredInput = &dto.KRIStructuredInput{}
	_, err := uc.Create(context.Background(), "vendor-1", "VEN-123456", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la unión es excluyente")
}

func TestKRICreate_ModoDesconocido_EsInvalido(t *testing.T) {
	uc := NewKRIUseCase(newFakeKRIRepo(), &fakeKRIGen{result: kriResult()})

	in := dto.CreateKRIRequest{AIInputEnvelope: dto.AIInputEnvelope{InputMode: "VOICE"}}
	_, err := uc.Create(context.Background(), "vendor-1", "VEN-123456", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKRICreate_FalloDeIA_NoPersiste(t *testing.T) {
	repo := newFakeKRIRepo()
	uc := NewKRIUseCase(repo, &fakeKRIGen{err: domain.ErrAIUnavailable})

	_, err := uc.Create(context.Background(), "vendor-1", "VEN-123456", textKRIRequest("texto"))
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
	assert.Empty(t, repo.assessments, "un fallo del modelo no deja registros a medias")
}

func TestKRIGet_Inexistente_Es404(t *testing.T) {
	uc := NewKRIUseCase(newFakeKRIRepo(), &fakeKRIGen{result: kriResult()})

	_, err := uc.Get(context.Background(), "vendor-1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
