package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository (usable con pool o tx).
// La dirección se guarda como JSONB.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un nuevo vendor.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	address, err := toJSONB(vendor.Address)
	if err != nil {
		return fmt.Errorf("serializar address: %w", err)
	}
	query := `
		INSERT INTO vendors (id, vendor_code, name, email, password_hash, enterprise_name,
			phone, gst_number, vendor_license, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		vendor.ID, vendor.VendorCode, vendor.Name, vendor.Email, vendor.PasswordHash,
		vendor.EnterpriseName, vendor.Phone, vendor.GSTNumber, vendor.VendorLicense,
		address, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendor por ID. Devuelve (nil, nil) si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail busca por email normalizado. Devuelve (nil, nil) si no existe.
func (r *VendorRepo) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *VendorRepo) getBy(ctx context.Context, where string, arg any) (*entity.Vendor, error) {
	query := `
		SELECT id, vendor_code, name, email, password_hash, enterprise_name,
			phone, gst_number, vendor_license, address, created_at, updated_at
		FROM vendors WHERE ` + where
	var v entity.Vendor
	var address []byte
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&v.ID, &v.VendorCode, &v.Name, &v.Email, &v.PasswordHash, &v.EnterpriseName,
		&v.Phone, &v.GSTNumber, &v.VendorLicense, &address, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if err := fromJSONB(address, &v.Address); err != nil {
		return nil, fmt.Errorf("deserializar address: %w", err)
	}
	return &v, nil
}
