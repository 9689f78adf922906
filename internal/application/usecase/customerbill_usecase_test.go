package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

type fakeBillRepo struct {
	bills map[string]*entity.CustomerBill
	err   error
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[string]*entity.CustomerBill)}
}

func (f *fakeBillRepo) Create(_ context.Context, b *entity.CustomerBill) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.bills {
		if existing.VendorID == b.VendorID && existing.InvoiceNumber == b.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	f.bills[b.ID] = b
	return nil
}

func (f *fakeBillRepo) GetByID(_ context.Context, vendorID, id string) (*entity.CustomerBill, error) {
	b, ok := f.bills[id]
	if !ok || b.VendorID != vendorID {
		return nil, f.err
	}
	return b, f.err
}

func (f *fakeBillRepo) ListByVendor(_ context.Context, vendorID string, _, _ int) ([]*entity.CustomerBill, error) {
	var out []*entity.CustomerBill
	for _, b := range f.bills {
		if b.VendorID == vendorID {
			out = append(out, b)
		}
	}
	return out, f.err
}

func (f *fakeBillRepo) Update(_ context.Context, b *entity.CustomerBill) error {
	f.bills[b.ID] = b
	return f.err
}

func (f *fakeBillRepo) Delete(_ context.Context, _, id string) error {
	delete(f.bills, id)
	return f.err
}

type fakeBillPDF struct{}

func (fakeBillPDF) GenerateBillPDF(_ *entity.CustomerBill) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func billRequest() dto.CreateCustomerBillRequest {
	txDate := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	return dto.CreateCustomerBillRequest{
		CustomerName:    "Cliente Final",
		InvoiceNumber:   "INV-001",
		TransactionDate: &txDate,
		PurchaseChannel: entity.ChannelOnline,
		PaymentMethod:   entity.PaymentUPI,
		Items: []dto.BillItemInput{
			{ProductName: "Casco", Quantity: 2, UnitPrice: decimal.NewFromFloat(150.50)},
			{ProductName: "Guantes", Quantity: 3, UnitPrice: decimal.NewFromInt(40)},
		},
		DiscountApplied: decimal.NewFromInt(21),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestBillCreate_RecalculaTotales(t *testing.T) {
	uc := NewCustomerBillUseCase(newFakeBillRepo(), fakeBillPDF{})

	bill, err := uc.Create(context.Background(), "vendor-1", billRequest())
	require.NoError(t, err)

	// 2×150.50 + 3×40 = 421; 421 − 21 = 400
	assert.True(t, bill.Items[0].TotalPrice.Equal(decimal.NewFromInt(301)), "totalPrice por línea")
	assert.True(t, bill.TotalAmount.Equal(decimal.NewFromInt(421)), "got %s", bill.TotalAmount)
	assert.True(t, bill.FinalAmountPaid.Equal(decimal.NewFromInt(400)), "got %s", bill.FinalAmountPaid)
}

func TestBillCreate_InvoiceDuplicado_EsDuplicate(t *testing.T) {
	uc := NewCustomerBillUseCase(newFakeBillRepo(), fakeBillPDF{})

	_, err := uc.Create(context.Background(), "vendor-1", billRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "vendor-1", billRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate, "invoiceNumber es único por vendor")
}

func TestBillCreate_CanalInvalido_EsInvalido(t *testing.T) {
	uc := NewCustomerBillUseCase(newFakeBillRepo(), fakeBillPDF{})

	in := billRequest()
	in.PurchaseChannel = "TELEPATIA"
	_, err := uc.Create(context.Background(), "vendor-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBillCreate_SinItems_EsInvalido(t *testing.T) {
	uc := NewCustomerBillUseCase(newFakeBillRepo(), fakeBillPDF{})

	in := billRequest()
	in.Items = nil
	_, err := uc.Create(context.Background(), "vendor-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBillCreate_CantidadCero_EsInvalida(t *testing.T) {
	uc := NewCustomerBillUseCase(newFakeBillRepo(), fakeBillPDF{})

	in := billRequest()
	in.Items[0].Quantity = 0
	_, err := uc.Create(context.Background(), "vendor-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reemplaza los datos pero preserva identidad, createdAt y el flag
// de reembolso; los totales se recalculan contra los items nuevos.
func TestBillUpdate_PreservaIdentidadYRecalcula(t *testing.T) {
	repo := newFakeBillRepo()
	uc := NewCustomerBillUseCase(repo, fakeBillPDF{})

	created, err := uc.Create(context.Background(), "vendor-1", billRequest())
	require.NoError(t, err)
	created.IsRefunded = true

	in := billRequest()
	in.Items = []dto.BillItemInput{{ProductName: "Casco", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}}
	in.DiscountApplied = decimal.NewFromInt(10)

	updated, err := uc.Update(context.Background(), "vendor-1", created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.IsRefunded, "el flag de reembolso no se pisa en updates")
	assert.True(t, updated.FinalAmountPaid.Equal(decimal.NewFromInt(90)), "got %s", updated.FinalAmountPaid)
}

func TestBillGet_OtroVendor_Es404(t *testing.T) {
	repo := newFakeBillRepo()
	uc := NewCustomerBillUseCase(repo, fakeBillPDF{})

	created, err := uc.Create(context.Background(), "vendor-1", billRequest())
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "vendor-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "una factura de otro vendor se comporta como inexistente")
}

func TestBillGeneratePDF(t *testing.T) {
	repo := newFakeBillRepo()
	uc := NewCustomerBillUseCase(repo, fakeBillPDF{})

	created, err := uc.Create(context.Background(), "vendor-1", billRequest())
	require.NoError(t, err)

	data, err := uc.GeneratePDF(context.Background(), "vendor-1", created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
