package repository

import (
	"context"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// InternalAuditRepository define el puerto de persistencia para InternalAudit.
type InternalAuditRepository interface {
	Create(ctx context.Context, audit *entity.InternalAudit) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.InternalAudit, error)
	// ListByVendor lista las auditorías del vendor, más recientes primero.
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.InternalAudit, error)
	Update(ctx context.Context, audit *entity.InternalAudit) error
	UpdateStatus(ctx context.Context, vendorID, id, status string) error
	Delete(ctx context.Context, vendorID, id string) error
	// AppendFinding agrega un hallazgo y persiste las métricas recalculadas.
	AppendFinding(ctx context.Context, audit *entity.InternalAudit) error
}
