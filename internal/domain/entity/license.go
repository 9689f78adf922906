package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Módulos SaaS contratables (deben coincidir con el CHECK de module_licenses).
const (
	ModuleKRI             = "KRI"
	ModuleSiteRisk        = "SITE_RISK"
	ModuleBCM             = "BCM"
	ModuleInternalAudit   = "INTERNAL_AUDIT"
	ModuleCustomerBilling = "CUSTOMER_BILLING"
)

// Estados de licencia. El estado almacenado es informativo: la vigencia real
// se recalcula siempre contra la ventana [StartDate, EndDate] al momento de
// la consulta, nunca se cachea ni se confía en el campo guardado.
const (
	LicenseStatusActive    = "ACTIVE"
	LicenseStatusExpired   = "EXPIRED"
	LicenseStatusPending   = "PENDING"
	LicenseStatusCancelled = "CANCELLED"
)

// Ciclos de facturación de la licencia.
const (
	BillingCycleMonthly = "MONTHLY"
	BillingCycleYearly  = "YEARLY"
	BillingCycleOneTime = "ONE_TIME"
)

// ModuleLicense asocia un vendor con un módulo contratado y su ventana de
// vigencia. Una compra crea un registro ACTIVE; la expiración es puramente
// temporal (sin job de fondo).
type ModuleLicense struct {
	ID            string
	VendorID      string
	ModuleCode    string // ver constantes Module*
	ModuleName    string // nombre legible ("Key Risk Indicators")
	Amount        decimal.Decimal
	Currency      string // default INR
	BillingCycle  string
	StartDate     time.Time
	EndDate       time.Time
	Status        string // ver constantes LicenseStatus*
	PaymentMode   string
	TransactionID string
	PaymentStatus string // SUCCESS | FAILED | PENDING
	PaidAt        *time.Time
	PurchasedBy   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UsableAt informa si la licencia habilita el módulo en el instante dado:
// estado ACTIVE y ventana de vigencia que contiene a now.
func (l *ModuleLicense) UsableAt(now time.Time) bool {
	return l.Status == LicenseStatusActive && !now.After(l.EndDate) && !now.Before(l.StartDate)
}
