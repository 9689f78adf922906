package entity

import "time"

// Vendor representa la organización/tenant del sistema. Todo registro de los
// demás módulos lleva una referencia obligatoria a su vendor.
type Vendor struct {
	ID             string
	VendorCode     string // código visible tipo "VEN-713027"
	Name           string
	Email          string // único en todo el sistema, normalizado (lower+trim)
	PasswordHash   string
	EnterpriseName string
	Phone          string
	GSTNumber      string
	VendorLicense  string
	Address        VendorAddress
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VendorAddress dirección de la empresa (opcional en el registro).
type VendorAddress struct {
	Locality string `json:"locality,omitempty"`
	City     string `json:"city,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
}
