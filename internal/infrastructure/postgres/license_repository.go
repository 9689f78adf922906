package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

const licenseColumns = `id, vendor_id, module_code, module_name, amount, currency,
	billing_cycle, start_date, end_date, status, payment_mode, transaction_id,
	payment_status, paid_at, purchased_by, created_at, updated_at`

// LicenseRepo implementación de LicenseRepository.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

// Create persiste una licencia comprada.
func (r *LicenseRepo) Create(ctx context.Context, license *entity.ModuleLicense) error {
	query := `
		INSERT INTO module_licenses (` + licenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		license.ID, license.VendorID, license.ModuleCode, license.ModuleName,
		license.Amount, license.Currency, license.BillingCycle,
		license.StartDate, license.EndDate, license.Status,
		license.PaymentMode, license.TransactionID, license.PaymentStatus,
		license.PaidAt, license.PurchasedBy, license.CreatedAt, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// FindUsable devuelve una licencia ACTIVE cuya ventana contiene a now, o
// (nil, nil). La vigencia se evalúa en la consulta, por request.
func (r *LicenseRepo) FindUsable(ctx context.Context, vendorID, moduleCode string, now time.Time) (*entity.ModuleLicense, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM module_licenses
		WHERE vendor_id = $1 AND module_code = $2 AND status = $3
			AND start_date <= $4 AND end_date >= $4
		ORDER BY end_date DESC
		LIMIT 1`
	row := r.q.QueryRow(ctx, query, vendorID, moduleCode, entity.LicenseStatusActive, now)
	license, err := scanLicense(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usable license: %w", err)
	}
	return license, nil
}

// CountByModule cuenta todas las licencias del vendor para el módulo.
func (r *LicenseRepo) CountByModule(ctx context.Context, vendorID, moduleCode string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM module_licenses WHERE vendor_id = $1 AND module_code = $2`,
		vendorID, moduleCode,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count licenses: %w", err)
	}
	return count, nil
}

// ListByVendor lista todas las licencias del vendor, más recientes primero.
func (r *LicenseRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.ModuleLicense, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM module_licenses WHERE vendor_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.ModuleLicense
	for rows.Next() {
		license, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, license)
	}
	return list, rows.Err()
}

// GetByID obtiene una licencia del vendor. Devuelve (nil, nil) si no existe
// o pertenece a otro vendor.
func (r *LicenseRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.ModuleLicense, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM module_licenses WHERE vendor_id = $1 AND id = $2`
	license, err := scanLicense(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return license, nil
}

// UpdateStatus cambia el estado declarado de la licencia.
func (r *LicenseRepo) UpdateStatus(ctx context.Context, vendorID, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE module_licenses SET status = $3, updated_at = NOW() WHERE vendor_id = $1 AND id = $2`,
		vendorID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update license status: %w", err)
	}
	return nil
}

// scanLicense escanea una fila con licenseColumns en orden.
func scanLicense(row interface{ Scan(...any) error }) (*entity.ModuleLicense, error) {
	var l entity.ModuleLicense
	err := row.Scan(
		&l.ID, &l.VendorID, &l.ModuleCode, &l.ModuleName,
		&l.Amount, &l.Currency, &l.BillingCycle,
		&l.StartDate, &l.EndDate, &l.Status,
		&l.PaymentMode, &l.TransactionID, &l.PaymentStatus,
		&l.PaidAt, &l.PurchasedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
