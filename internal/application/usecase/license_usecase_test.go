package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// fakeLicenseRepo simula el repositorio en memoria. FindUsable aplica la
// misma regla que el SQL real: ACTIVE y ventana que contiene a now.
type fakeLicenseRepo struct {
	licenses []*entity.ModuleLicense
	err      error
}

func (f *fakeLicenseRepo) Create(_ context.Context, l *entity.ModuleLicense) error {
	if f.err != nil {
		return f.err
	}
	f.licenses = append(f.licenses, l)
	return nil
}

func (f *fakeLicenseRepo) FindUsable(_ context.Context, vendorID, moduleCode string, now time.Time) (*entity.ModuleLicense, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.licenses {
		if l.VendorID == vendorID && l.ModuleCode == moduleCode && l.UsableAt(now) {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLicenseRepo) CountByModule(_ context.Context, vendorID, moduleCode string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, l := range f.licenses {
		if l.VendorID == vendorID && l.ModuleCode == moduleCode {
			count++
		}
	}
	return count, nil
}

func (f *fakeLicenseRepo) ListByVendor(_ context.Context, vendorID string) ([]*entity.ModuleLicense, error) {
	var out []*entity.ModuleLicense
	for _, l := range f.licenses {
		if l.VendorID == vendorID {
			out = append(out, l)
		}
	}
	return out, f.err
}

func (f *fakeLicenseRepo) GetByID(_ context.Context, vendorID, id string) (*entity.ModuleLicense, error) {
	for _, l := range f.licenses {
		if l.VendorID == vendorID && l.ID == id {
			return l, nil
		}
	}
	return nil, f.err
}

func (f *fakeLicenseRepo) UpdateStatus(_ context.Context, vendorID, id, status string) error {
	for _, l := range f.licenses {
		if l.VendorID == vendorID && l.ID == id {
			l.Status = status
		}
	}
	return f.err
}

func newLicenseServiceAt(repo *fakeLicenseRepo, now time.Time) *LicenseService {
	svc := NewLicenseService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func purchaseRequest(moduleCode string, months int) dto.PurchaseModuleRequest {
	return dto.PurchaseModuleRequest{
		ModuleCode:            moduleCode,
		ModuleName:            "Módulo de prueba",
		LicenseDurationMonths: months,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Purchase
// ──────────────────────────────────────────────────────────────────────────────

func TestLicensePurchase_VentanaYDefaults(t *testing.T) {
	repo := &fakeLicenseRepo{}
	svc := newLicenseServiceAt(repo, testNow)

	license, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", purchaseRequest(entity.ModuleKRI, 3))
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseStatusActive, license.Status)
	assert.Equal(t, testNow, license.StartDate)
	assert.Equal(t, testNow.AddDate(0, 3, 0), license.EndDate, "la vigencia dura licenseDurationMonths")
	assert.Equal(t, "INR", license.Currency, "moneda por defecto")
	assert.Equal(t, "SUCCESS", license.PaymentStatus)
	assert.Equal(t, "VEN-123456", license.PurchasedBy)
	assert.Len(t, repo.licenses, 1)
}

func TestLicensePurchase_ModuloDesconocido_EsInvalido(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	_, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", purchaseRequest("NO_EXISTE", 3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLicensePurchase_DuracionCero_EsInvalida(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	_, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", purchaseRequest(entity.ModuleKRI, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLicensePurchase_CicloFueraDeCatalogo_EsInvalido(t *testing.T) {
	repo := &fakeLicenseRepo{}
	svc := newLicenseServiceAt(repo, testNow)

	in := purchaseRequest(entity.ModuleKRI, 3)
	in.Pricing.BillingCycle = "WEEKLY"
	_, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.licenses, "una compra rechazada no persiste nada")
}

func TestLicensePurchase_CicloDelCatalogo_EsValido(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	in := purchaseRequest(entity.ModuleKRI, 12)
	in.Pricing.BillingCycle = entity.BillingCycleYearly
	license, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", in)
	require.NoError(t, err)
	assert.Equal(t, entity.BillingCycleYearly, license.BillingCycle)
}

func TestLicensePurchase_MontoNegativo_EsInvalido(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	in := purchaseRequest(entity.ModuleKRI, 3)
	in.Pricing.Amount = decimal.NewFromInt(-500)
	_, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Recomprar un módulo vencido crea una licencia nueva; la vieja queda como
// historial.
func TestLicensePurchase_RecompraTrasVencimiento(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "old", VendorID: "vendor-1", ModuleCode: entity.ModuleKRI,
		Status:    entity.LicenseStatusActive,
		StartDate: testNow.AddDate(-1, 0, 0),
		EndDate:   testNow.AddDate(0, -6, 0),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	_, err := svc.Purchase(context.Background(), "vendor-1", "VEN-123456", purchaseRequest(entity.ModuleKRI, 1))
	require.NoError(t, err)
	assert.Len(t, repo.licenses, 2)

	license, denial, err := svc.CheckAccess(context.Background(), "vendor-1", entity.ModuleKRI)
	require.NoError(t, err)
	assert.Nil(t, denial)
	require.NotNil(t, license)
	assert.NotEqual(t, "old", license.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckAccess — la distinción no-comprado / vencido
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckAccess_NuncaComprado(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	license, denial, err := svc.CheckAccess(context.Background(), "vendor-1", entity.ModuleBCM)
	require.NoError(t, err)
	assert.Nil(t, license)
	require.NotNil(t, denial)
	assert.True(t, denial.NotPurchased)
}

func TestCheckAccess_Vencido(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "l1", VendorID: "vendor-1", ModuleCode: entity.ModuleBCM,
		Status:    entity.LicenseStatusActive,
		StartDate: testNow.AddDate(-1, 0, 0),
		EndDate:   testNow.AddDate(0, 0, -1),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	license, denial, err := svc.CheckAccess(context.Background(), "vendor-1", entity.ModuleBCM)
	require.NoError(t, err)
	assert.Nil(t, license)
	require.NotNil(t, denial)
	assert.False(t, denial.NotPurchased, "hubo licencia: es vencimiento, no falta de compra")
}

func TestCheckAccess_CanceladaNoHabilita(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "l1", VendorID: "vendor-1", ModuleCode: entity.ModuleBCM,
		Status:    entity.LicenseStatusCancelled,
		StartDate: testNow.AddDate(0, -1, 0),
		EndDate:   testNow.AddDate(0, 1, 0),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	license, denial, err := svc.CheckAccess(context.Background(), "vendor-1", entity.ModuleBCM)
	require.NoError(t, err)
	assert.Nil(t, license)
	require.NotNil(t, denial)
	assert.False(t, denial.NotPurchased)
}

func TestCheckAccess_ErrorDB_SePropaga(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{err: errors.New("db down")}, testNow)

	_, _, err := svc.CheckAccess(context.Background(), "vendor-1", entity.ModuleBCM)
	assert.Error(t, err, "un fallo de DB nunca debe convertirse en denial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_LicenciaVigente(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "l1", VendorID: "vendor-1", ModuleCode: entity.ModuleKRI,
		Status:    entity.LicenseStatusActive,
		StartDate: testNow.AddDate(0, -1, 0),
		EndDate:   testNow.AddDate(0, 1, 0),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	license, err := svc.Cancel(context.Background(), "vendor-1", "l1")
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseStatusCancelled, license.Status)
}

func TestCancel_LicenciaVencida_EsConflicto(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "l1", VendorID: "vendor-1", ModuleCode: entity.ModuleKRI,
		Status:    entity.LicenseStatusActive,
		StartDate: testNow.AddDate(-1, 0, 0),
		EndDate:   testNow.AddDate(0, -1, 0),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	_, err := svc.Cancel(context.Background(), "vendor-1", "l1")
	assert.ErrorIs(t, err, domain.ErrConflict, "EXPIRED es terminal, no se puede cancelar")
}

func TestCancel_LicenciaInexistente_Es404(t *testing.T) {
	svc := newLicenseServiceAt(&fakeLicenseRepo{}, testNow)

	_, err := svc.Cancel(context.Background(), "vendor-1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// MyModules — estado efectivo recalculado
// ──────────────────────────────────────────────────────────────────────────────

func TestMyModules_EstadoEfectivoExpirado(t *testing.T) {
	repo := &fakeLicenseRepo{licenses: []*entity.ModuleLicense{{
		ID: "l1", VendorID: "vendor-1", ModuleCode: entity.ModuleKRI,
		Status:    entity.LicenseStatusActive, // almacenado, desactualizado
		StartDate: testNow.AddDate(-1, 0, 0),
		EndDate:   testNow.AddDate(0, -1, 0),
	}}}
	svc := newLicenseServiceAt(repo, testNow)

	out, err := svc.MyModules(context.Background(), "vendor-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.LicenseStatusActive, out[0].Status)
	assert.Equal(t, entity.LicenseStatusExpired, out[0].EffectiveStatus,
		"el estado efectivo se recalcula contra la ventana, no se confía en el almacenado")
}
