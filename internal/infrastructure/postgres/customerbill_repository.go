package postgres

import (
	"context"
	"fmt"

	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

var _ repository.CustomerBillRepository = (*CustomerBillRepo)(nil)

const billColumns = `id, vendor_id, customer_id, customer_name, customer_email, customer_phone,
	demographics, invoice_number, transaction_date, purchase_channel, payment_method,
	items, total_amount, discount_applied, final_amount_paid, meta, notes, is_refunded,
	created_at, updated_at`

// CustomerBillRepo implementación de CustomerBillRepository. Las líneas,
// demografía y metadatos se guardan como JSONB; los montos como NUMERIC.
type CustomerBillRepo struct {
	q Querier
}

// NewCustomerBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerBillRepository(q Querier) *CustomerBillRepo {
	return &CustomerBillRepo{q: q}
}

// Create persiste una factura. invoice_number único por vendor -> ErrDuplicate.
func (r *CustomerBillRepo) Create(ctx context.Context, bill *entity.CustomerBill) error {
	demographics, items, meta, err := billJSONColumns(bill)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO customer_bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = r.q.Exec(ctx, query,
		bill.ID, bill.VendorID, bill.CustomerID, bill.CustomerName, bill.CustomerEmail,
		bill.CustomerPhone, demographics, bill.InvoiceNumber, bill.TransactionDate,
		bill.PurchaseChannel, bill.PaymentMethod, items, bill.TotalAmount,
		bill.DiscountApplied, bill.FinalAmountPaid, meta, bill.Notes, bill.IsRefunded,
		bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura del vendor. (nil, nil) si no existe.
func (r *CustomerBillRepo) GetByID(ctx context.Context, vendorID, id string) (*entity.CustomerBill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM customer_bills WHERE vendor_id = $1 AND id = $2`
	bill, err := scanBill(r.q.QueryRow(ctx, query, vendorID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return bill, nil
}

// ListByVendor lista facturas por fecha de transacción descendente.
func (r *CustomerBillRepo) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.CustomerBill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM customer_bills WHERE vendor_id = $1
		ORDER BY transaction_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerBill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, bill)
	}
	return list, rows.Err()
}

// Update reemplaza la factura (última escritura gana).
func (r *CustomerBillRepo) Update(ctx context.Context, bill *entity.CustomerBill) error {
	demographics, items, meta, err := billJSONColumns(bill)
	if err != nil {
		return err
	}
	query := `
		UPDATE customer_bills SET
			customer_id = $3, customer_name = $4, customer_email = $5, customer_phone = $6,
			demographics = $7, invoice_number = $8, transaction_date = $9,
			purchase_channel = $10, payment_method = $11, items = $12,
			total_amount = $13, discount_applied = $14, final_amount_paid = $15,
			meta = $16, notes = $17, is_refunded = $18, updated_at = $19
		WHERE vendor_id = $1 AND id = $2`
	_, err = r.q.Exec(ctx, query,
		bill.VendorID, bill.ID, bill.CustomerID, bill.CustomerName, bill.CustomerEmail,
		bill.CustomerPhone, demographics, bill.InvoiceNumber, bill.TransactionDate,
		bill.PurchaseChannel, bill.PaymentMethod, items, bill.TotalAmount,
		bill.DiscountApplied, bill.FinalAmountPaid, meta, bill.Notes, bill.IsRefunded,
		bill.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete elimina una factura del vendor.
func (r *CustomerBillRepo) Delete(ctx context.Context, vendorID, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM customer_bills WHERE vendor_id = $1 AND id = $2`,
		vendorID, id,
	)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

func billJSONColumns(bill *entity.CustomerBill) (demographics, items, meta []byte, err error) {
	if demographics, err = toJSONB(bill.Demographics); err != nil {
		return nil, nil, nil, fmt.Errorf("serializar demografía: %w", err)
	}
	if items, err = toJSONB(bill.Items); err != nil {
		return nil, nil, nil, fmt.Errorf("serializar items: %w", err)
	}
	if meta, err = toJSONB(bill.Meta); err != nil {
		return nil, nil, nil, fmt.Errorf("serializar meta: %w", err)
	}
	return demographics, items, meta, nil
}

func scanBill(row interface{ Scan(...any) error }) (*entity.CustomerBill, error) {
	var b entity.CustomerBill
	var demographics, items, meta []byte
	err := row.Scan(
		&b.ID, &b.VendorID, &b.CustomerID, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &demographics, &b.InvoiceNumber, &b.TransactionDate,
		&b.PurchaseChannel, &b.PaymentMethod, &items, &b.TotalAmount,
		&b.DiscountApplied, &b.FinalAmountPaid, &meta, &b.Notes, &b.IsRefunded,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(demographics, &b.Demographics); err != nil {
		return nil, fmt.Errorf("deserializar demografía: %w", err)
	}
	if err := fromJSONB(items, &b.Items); err != nil {
		return nil, fmt.Errorf("deserializar items: %w", err)
	}
	if err := fromJSONB(meta, &b.Meta); err != nil {
		return nil, fmt.Errorf("deserializar meta: %w", err)
	}
	return &b, nil
}
