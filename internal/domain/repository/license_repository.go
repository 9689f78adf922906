package repository

import (
	"context"
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// LicenseRepository define el puerto de persistencia para ModuleLicense.
type LicenseRepository interface {
	Create(ctx context.Context, license *entity.ModuleLicense) error
	// FindUsable devuelve una licencia ACTIVE cuya ventana contiene a now,
	// o (nil, nil) si no hay ninguna vigente. La vigencia se evalúa en la
	// consulta, nunca desde un chequeo anterior.
	FindUsable(ctx context.Context, vendorID, moduleCode string, now time.Time) (*entity.ModuleLicense, error)
	// CountByModule cuenta todas las licencias del vendor para el módulo,
	// vigentes o no. Permite distinguir "nunca comprado" de "vencido".
	CountByModule(ctx context.Context, vendorID, moduleCode string) (int, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.ModuleLicense, error)
	GetByID(ctx context.Context, vendorID, id string) (*entity.ModuleLicense, error)
	UpdateStatus(ctx context.Context, vendorID, id, status string) error
}
