package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// validModuleCodes módulos contratables del catálogo.
var validModuleCodes = map[string]bool{
	entity.ModuleKRI:             true,
	entity.ModuleSiteRisk:        true,
	entity.ModuleBCM:             true,
	entity.ModuleInternalAudit:   true,
	entity.ModuleCustomerBilling: true,
}

// validBillingCycles ciclos de facturación aceptados en una compra.
var validBillingCycles = map[string]bool{
	entity.BillingCycleMonthly: true,
	entity.BillingCycleYearly:  true,
	entity.BillingCycleOneTime: true,
}

// AccessDenial explica por qué el gate rechaza un módulo: nunca comprado
// versus todas las licencias vencidas/canceladas. Las dos causas producen
// 403 con códigos distintos.
type AccessDenial struct {
	ModuleCode   string
	NotPurchased bool
}

// LicenseService es el único punto de la aplicación que conoce la lógica de
// compra y vigencia de licencias de módulos SaaS.
type LicenseService struct {
	licenseRepo repository.LicenseRepository
	now         func() time.Time
}

// NewLicenseService construye el servicio de licencias.
func NewLicenseService(licenseRepo repository.LicenseRepository) *LicenseService {
	return &LicenseService{licenseRepo: licenseRepo, now: time.Now}
}

// Purchase registra la compra de un módulo: ventana de vigencia de
// licenseDurationMonths a partir de ahora, estado ACTIVE y pago SUCCESS
// (la pasarela real queda fuera de alcance).
func (s *LicenseService) Purchase(ctx context.Context, vendorID, purchasedBy string, in dto.PurchaseModuleRequest) (*entity.ModuleLicense, error) {
	if in.ModuleCode == "" || in.ModuleName == "" || in.LicenseDurationMonths <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validModuleCodes[in.ModuleCode] {
		return nil, domain.ErrInvalidInput
	}
	// El ciclo es opcional (ONE_TIME implícito), pero si viene debe ser del catálogo.
	if in.Pricing.BillingCycle != "" && !validBillingCycles[in.Pricing.BillingCycle] {
		return nil, domain.ErrInvalidInput
	}
	if in.Pricing.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	currency := in.Pricing.Currency
	if currency == "" {
		currency = "INR"
	}
	paidAt := now
	license := &entity.ModuleLicense{
		ID:            uuid.New().String(),
		VendorID:      vendorID,
		ModuleCode:    in.ModuleCode,
		ModuleName:    in.ModuleName,
		Amount:        in.Pricing.Amount,
		Currency:      currency,
		BillingCycle:  in.Pricing.BillingCycle,
		StartDate:     now,
		EndDate:       now.AddDate(0, in.LicenseDurationMonths, 0),
		Status:        entity.LicenseStatusActive,
		PaymentMode:   in.PaymentMode,
		TransactionID: in.TransactionID,
		PaymentStatus: "SUCCESS",
		PaidAt:        &paidAt,
		PurchasedBy:   purchasedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.licenseRepo.Create(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

// MyModules lista todas las licencias del vendor (vigentes o no).
func (s *LicenseService) MyModules(ctx context.Context, vendorID string) ([]dto.ModuleLicenseResponse, error) {
	licenses, err := s.licenseRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]dto.ModuleLicenseResponse, 0, len(licenses))
	for _, l := range licenses {
		out = append(out, dto.ToModuleLicenseResponse(l, now))
	}
	return out, nil
}

// Cancel cancela explícitamente una licencia del vendor. Solo una licencia
// ACTIVE (y aún vigente) puede cancelarse; EXPIRED y CANCELLED son estados
// terminales.
func (s *LicenseService) Cancel(ctx context.Context, vendorID, licenseID string) (*entity.ModuleLicense, error) {
	license, err := s.licenseRepo.GetByID(ctx, vendorID, licenseID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	if !license.UsableAt(s.now()) {
		return nil, domain.ErrConflict
	}
	if err := s.licenseRepo.UpdateStatus(ctx, vendorID, licenseID, entity.LicenseStatusCancelled); err != nil {
		return nil, err
	}
	license.Status = entity.LicenseStatusCancelled
	return license, nil
}

// CheckAccess decide si el vendor puede usar el módulo en este instante.
// Se evalúa contra la ventana de vigencia en cada request, sin cachear.
// Devuelve la licencia vigente, o un AccessDenial que distingue "no
// comprado" de "vencido". error != nil solo ante fallos de infraestructura.
func (s *LicenseService) CheckAccess(ctx context.Context, vendorID, moduleCode string) (*entity.ModuleLicense, *AccessDenial, error) {
	license, err := s.licenseRepo.FindUsable(ctx, vendorID, moduleCode, s.now())
	if err != nil {
		return nil, nil, err
	}
	if license != nil {
		return license, nil, nil
	}

	count, err := s.licenseRepo.CountByModule(ctx, vendorID, moduleCode)
	if err != nil {
		return nil, nil, err
	}
	return nil, &AccessDenial{ModuleCode: moduleCode, NotPurchased: count == 0}, nil
}
