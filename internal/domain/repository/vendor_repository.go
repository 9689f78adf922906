package repository

import (
	"context"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
// La implementación vive en infrastructure.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	// GetByEmail busca por email normalizado. Devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Vendor, error)
}
