package repository

import (
	"context"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// CustomerBillRepository define el puerto de persistencia para CustomerBill.
type CustomerBillRepository interface {
	Create(ctx context.Context, bill *entity.CustomerBill) error
	GetByID(ctx context.Context, vendorID, id string) (*entity.CustomerBill, error)
	// ListByVendor lista facturas del vendor ordenadas por fecha de
	// transacción descendente.
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.CustomerBill, error)
	Update(ctx context.Context, bill *entity.CustomerBill) error
	Delete(ctx context.Context, vendorID, id string) error
}
