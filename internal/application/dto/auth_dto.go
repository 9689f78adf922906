package dto

import (
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// RegisterVendorRequest onboarding de un vendor.
type RegisterVendorRequest struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Password       string                `json:"password"`
	EnterpriseName string                `json:"enterpriseName"`
	Phone          string                `json:"phone"`
	GSTNumber      string                `json:"gstNumber,omitempty"`
	VendorLicense  string                `json:"vendorLicense"`
	Address        *entity.VendorAddress `json:"address,omitempty"`
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VendorResponse vista pública del vendor (sin hash de password).
type VendorResponse struct {
	ID             string    `json:"id"`
	VendorCode     string    `json:"vendorId"`
	Name           string    `json:"name"`
	EnterpriseName string    `json:"enterpriseName"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// LoginResponse token + vendor.
type LoginResponse struct {
	Token  string         `json:"token"`
	Vendor VendorResponse `json:"vendor"`
}
