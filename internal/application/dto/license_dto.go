package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// PricingInput precio declarado en la compra del módulo.
type PricingInput struct {
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty"`     // default INR
	BillingCycle string          `json:"billingCycle,omitempty"` // MONTHLY | YEARLY | ONE_TIME
}

// PurchaseModuleRequest request de POST /api/billing/purchase.
type PurchaseModuleRequest struct {
	ModuleCode            string       `json:"moduleCode"`
	ModuleName            string       `json:"moduleName"`
	Pricing               PricingInput `json:"pricing"`
	LicenseDurationMonths int          `json:"licenseDurationMonths"`
	PaymentMode           string       `json:"paymentMode,omitempty"`
	TransactionID         string       `json:"transactionId,omitempty"`
}

// ModuleLicenseResponse vista de una licencia. EffectiveStatus refleja el
// estado real recalculado contra la ventana de vigencia (el almacenado puede
// estar desactualizado hasta la próxima lectura).
type ModuleLicenseResponse struct {
	ID              string          `json:"id"`
	ModuleCode      string          `json:"moduleCode"`
	ModuleName      string          `json:"moduleName"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	BillingCycle    string          `json:"billingCycle,omitempty"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effectiveStatus"`
	PaymentStatus   string          `json:"paymentStatus,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
}

// ToModuleLicenseResponse proyecta la entidad recalculando el estado efectivo.
func ToModuleLicenseResponse(l *entity.ModuleLicense, now time.Time) ModuleLicenseResponse {
	effective := l.Status
	if l.Status == entity.LicenseStatusActive && now.After(l.EndDate) {
		effective = entity.LicenseStatusExpired
	}
	return ModuleLicenseResponse{
		ID:              l.ID,
		ModuleCode:      l.ModuleCode,
		ModuleName:      l.ModuleName,
		Amount:          l.Amount,
		Currency:        l.Currency,
		BillingCycle:    l.BillingCycle,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		Status:          l.Status,
		EffectiveStatus: effective,
		PaymentStatus:   l.PaymentStatus,
		PaidAt:          l.PaidAt,
	}
}
