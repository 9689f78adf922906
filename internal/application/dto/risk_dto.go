package dto

import (
	"strings"
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// ── Entrada común de los módulos de IA ────────────────────────────────────────

// AIInputEnvelope campos comunes de la unión discriminada TEXT | STRUCTURED.
// Se embebe en los requests de KRI y Site Risk; la validación de exclusión
// mutua vive en ValidateUnion.
type AIInputEnvelope struct {
	InputMode    string `json:"inputMode"`
	RawTextInput string `json:"rawTextInput,omitempty"`
}

// ValidateUnion verifica el invariante de la unión: exactamente una de las
// dos formas de entrada debe estar presente según el inputMode declarado.
// hasStructured indica si el request trae structuredInput.
func (e AIInputEnvelope) ValidateUnion(hasStructured bool) error {
	switch e.InputMode {
	case entity.InputModeText:
		if strings.TrimSpace(e.RawTextInput) == "" || hasStructured {
			return domain.ErrInvalidInput
		}
	case entity.InputModeStructured:
		if !hasStructured || strings.TrimSpace(e.RawTextInput) != "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ── KRI: cuestionario estructurado ────────────────────────────────────────────

// KRIBusinessOverview perfil de negocio.
type KRIBusinessOverview struct {
	Industry            string     `json:"industry,omitempty"`
	ProductsOrServices  StringList `json:"productsOrServices,omitempty"`
	BusinessModel       string     `json:"businessModel,omitempty"`
	AnnualRevenueRange  string     `json:"annualRevenueRange,omitempty"`
	EmployeeCountRange  string     `json:"employeeCountRange,omitempty"`
}

// KRIOperationalContext contexto operativo.
type KRIOperationalContext struct {
	CoreProcesses      StringList `json:"coreProcesses,omitempty"`
	KeyDependencies    StringList `json:"keyDependencies,omitempty"`
	GeographicPresence StringList `json:"geographicPresence,omitempty"`
	OutsourcingLevel   string     `json:"outsourcingLevel,omitempty"` // Low | Medium | High
}

// KRIDataSensitivity tipos de datos sensibles que maneja el negocio.
type KRIDataSensitivity struct {
	CustomerData  bool `json:"customerData"`
	FinancialData bool `json:"financialData"`
	PersonalData  bool `json:"personalData"`
}

// KRITechnologyContext contexto tecnológico.
type KRITechnologyContext struct {
	TechStack                     StringList         `json:"techStack,omitempty"`
	DataSensitivity               KRIDataSensitivity `json:"dataSensitivity"`
	SystemAvailabilityCriticality string             `json:"systemAvailabilityCriticality,omitempty"`
}

// KRIComplianceContext contexto regulatorio.
type KRIComplianceContext struct {
	RegulationsApplicable StringList `json:"regulationsApplicable,omitempty"`
	AuditsFrequency       string     `json:"auditsFrequency,omitempty"`
	PastComplianceIssues  bool       `json:"pastComplianceIssues"`
}

// KRIStrategicContext contexto estratégico.
type KRIStrategicContext struct {
	GrowthPlans            string `json:"growthPlans,omitempty"`
	MarketCompetitionLevel string `json:"marketCompetitionLevel,omitempty"`
	RelianceOnKeyClients   string `json:"relianceOnKeyClients,omitempty"`
}

// KRIStructuredInput cuestionario multi-sección del módulo KRI.
type KRIStructuredInput struct {
	BusinessOverview   KRIBusinessOverview   `json:"businessOverview"`
	OperationalContext KRIOperationalContext `json:"operationalContext"`
	TechnologyContext  KRITechnologyContext  `json:"technologyContext"`
	ComplianceContext  KRIComplianceContext  `json:"complianceContext"`
	StrategicContext   KRIStrategicContext   `json:"strategicContext"`
}

// CreateKRIRequest request de POST /api/kri.
type CreateKRIRequest struct {
	AIInputEnvelope
	StructuredInput *KRIStructuredInput `json:"structuredInput,omitempty"`
}

// Validate aplica el invariante de la unión TEXT | STRUCTURED.
func (r CreateKRIRequest) Validate() error {
	return r.ValidateUnion(r.StructuredInput != nil)
}

// ── Site Risk: cuestionario estructurado ──────────────────────────────────────

// SiteIdentity identidad del sitio evaluado.
type SiteIdentity struct {
	SiteName      string `json:"siteName,omitempty"`
	SiteType      string `json:"siteType,omitempty"` // Office, Warehouse, Factory
	OwnershipType string `json:"ownershipType,omitempty"`
}

// SiteLocationDetails ubicación y exposición geográfica.
type SiteLocationDetails struct {
	Locality    string `json:"locality,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	SeismicZone string `json:"seismicZone,omitempty"`
	FloodZone   bool   `json:"floodZone"`
}

// SiteBuildingDetails características del edificio.
type SiteBuildingDetails struct {
	NumberOfFloors       int    `json:"numberOfFloors,omitempty"`
	CarpetAreaSqFt       int    `json:"carpetAreaSqFt,omitempty"`
	ConstructionMaterial string `json:"constructionMaterial,omitempty"`
	BuildingAgeYears     int    `json:"buildingAgeYears,omitempty"`
}

// SiteSafetyInfrastructure infraestructura de seguridad instalada.
type SiteSafetyInfrastructure struct {
	FireSafetyEquipment StringList `json:"fireSafetyEquipment,omitempty"`
	EmergencyExits      int        `json:"emergencyExits,omitempty"`
	LastFireDrill       *time.Time `json:"lastFireDrill,omitempty"`
	CCTVInstalled       bool       `json:"cctvInstalled"`
	AccessControlSystem bool       `json:"accessControlSystem"`
}

// SiteComplianceAndInsurance seguros y certificaciones del sitio.
type SiteComplianceAndInsurance struct {
	InsuranceProvider    string     `json:"insuranceProvider,omitempty"`
	InsuranceExpiry      *time.Time `json:"insuranceExpiry,omitempty"`
	FireNOC              bool       `json:"fireNOC"`
	OccupancyCertificate bool       `json:"occupancyCertificate"`
	LastSafetyAuditDate  *time.Time `json:"lastSafetyAuditDate,omitempty"`
}

// SiteOperationalContext contexto operativo del sitio.
type SiteOperationalContext struct {
	DailyOccupancy            int  `json:"dailyOccupancy,omitempty"`
	HazardousMaterialsPresent bool `json:"hazardousMaterialsPresent"`
	CriticalOperations        bool `json:"criticalOperations"`
}

// SiteRiskStructuredInput cuestionario multi-sección del módulo Site Risk.
type SiteRiskStructuredInput struct {
	SiteIdentity           SiteIdentity               `json:"siteIdentity"`
	LocationDetails        SiteLocationDetails        `json:"locationDetails"`
	BuildingDetails        SiteBuildingDetails        `json:"buildingDetails"`
	SafetyInfrastructure   SiteSafetyInfrastructure   `json:"safetyInfrastructure"`
	ComplianceAndInsurance SiteComplianceAndInsurance `json:"complianceAndInsurance"`
	OperationalContext     SiteOperationalContext     `json:"operationalContext"`
}

// CreateSiteRiskRequest request de POST /api/site-risk.
type CreateSiteRiskRequest struct {
	AIInputEnvelope
	StructuredInput *SiteRiskStructuredInput `json:"structuredInput,omitempty"`
}

// Validate aplica el invariante de la unión TEXT | STRUCTURED.
func (r CreateSiteRiskRequest) Validate() error {
	return r.ValidateUnion(r.StructuredInput != nil)
}
