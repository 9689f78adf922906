package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
	"github.com/vendorsahyog/riskguard-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleVendorAdmin es el rol estampado en el token de un vendor autenticado.
const RoleVendorAdmin = "VendorAdmin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de vendors.
type AuthUseCase struct {
	vendorRepo repository.VendorRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(vendorRepo repository.VendorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{vendorRepo: vendorRepo, jwtCfg: jwtCfg}
}

// Register da de alta un vendor: valida campos obligatorios, normaliza el
// email, genera el código VEN-xxxxxx y hashea el password con bcrypt.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" ||
		in.EnterpriseName == "" || in.Phone == "" || in.VendorLicense == "" {
		return nil, domain.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var address entity.VendorAddress
	if in.Address != nil {
		address = *in.Address
	}
	vendor := &entity.Vendor{
		ID:             uuid.New().String(),
		VendorCode:     newVendorCode(now),
		Name:           in.Name,
		Email:          email,
		PasswordHash:   string(hash),
		EnterpriseName: in.EnterpriseName,
		Phone:          in.Phone,
		GSTNumber:      in.GSTNumber,
		VendorLicense:  in.VendorLicense,
		Address:        address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	resp := toVendorResponse(vendor)
	return &resp, nil
}

// Login verifica email/password y genera el JWT de 24 h.
// Email inexistente y password incorrecto responden igual (ErrUnauthorized)
// para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	vendor, err := uc.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, vendor.ID, vendor.VendorCode, RoleVendorAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Vendor: toVendorResponse(vendor),
	}, nil
}

// newVendorCode genera el código visible "VEN-" + últimos 6 dígitos del
// timestamp en milisegundos.
func newVendorCode(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	return "VEN-" + millis[len(millis)-6:]
}

func toVendorResponse(v *entity.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:             v.ID,
		VendorCode:     v.VendorCode,
		Name:           v.Name,
		EnterpriseName: v.EnterpriseName,
		Email:          v.Email,
		CreatedAt:      v.CreatedAt,
	}
}
