package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendorsahyog/riskguard-api/internal/application/dto"
	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
	"github.com/vendorsahyog/riskguard-api/internal/domain/repository"
)

// validPurchaseChannels canales de compra aceptados.
var validPurchaseChannels = map[string]bool{
	entity.ChannelOnline:  true,
	entity.ChannelInStore: true,
	entity.ChannelApp:     true,
	entity.ChannelPartner: true,
}

// validPaymentMethods métodos de pago aceptados.
var validPaymentMethods = map[string]bool{
	entity.PaymentCard:       true,
	entity.PaymentUPI:        true,
	entity.PaymentCash:       true,
	entity.PaymentWallet:     true,
	entity.PaymentNetBanking: true,
}

// CustomerBillUseCase casos de uso de facturación de clientes finales.
// Los totales nunca se aceptan del caller: se recalculan en cada escritura.
type CustomerBillUseCase struct {
	repo   repository.CustomerBillRepository
	pdfGen ports.BillPDFGenerator
}

// NewCustomerBillUseCase construye el caso de uso de facturación.
func NewCustomerBillUseCase(repo repository.CustomerBillRepository, pdfGen ports.BillPDFGenerator) *CustomerBillUseCase {
	return &CustomerBillUseCase{repo: repo, pdfGen: pdfGen}
}

// Create registra una factura. invoiceNumber único por vendor (ErrDuplicate
// si colisiona); las líneas y totales se recalculan en servidor.
func (uc *CustomerBillUseCase) Create(ctx context.Context, vendorID string, in dto.CreateCustomerBillRequest) (*entity.CustomerBill, error) {
	bill, err := billFromRequest(vendorID, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	bill.ID = uuid.New().String()
	bill.CreatedAt = now
	bill.UpdatedAt = now
	bill.RecalculateTotals()

	if err := uc.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Get devuelve una factura del vendor.
func (uc *CustomerBillUseCase) Get(ctx context.Context, vendorID, id string) (*entity.CustomerBill, error) {
	bill, err := uc.repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return bill, nil
}

// List lista las facturas del vendor por fecha de transacción descendente.
func (uc *CustomerBillUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) ([]*entity.CustomerBill, error) {
	page.DefaultPage()
	return uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
}

// Update reemplaza los datos de la factura recalculando totales.
// Última escritura gana.
func (uc *CustomerBillUseCase) Update(ctx context.Context, vendorID, id string, in dto.CreateCustomerBillRequest) (*entity.CustomerBill, error) {
	existing, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	bill, err := billFromRequest(vendorID, in)
	if err != nil {
		return nil, err
	}
	bill.ID = existing.ID
	bill.IsRefunded = existing.IsRefunded
	bill.CreatedAt = existing.CreatedAt
	bill.UpdatedAt = time.Now()
	bill.RecalculateTotals()

	if err := uc.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Delete elimina una factura del vendor.
func (uc *CustomerBillUseCase) Delete(ctx context.Context, vendorID, id string) error {
	if _, err := uc.Get(ctx, vendorID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, vendorID, id)
}

// GeneratePDF genera el PDF imprimible de la factura.
func (uc *CustomerBillUseCase) GeneratePDF(ctx context.Context, vendorID, id string) ([]byte, error) {
	bill, err := uc.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateBillPDF(bill)
}

// billFromRequest valida el request y construye la entidad sin campos
// generados (id, timestamps, totales).
func billFromRequest(vendorID string, in dto.CreateCustomerBillRequest) (*entity.CustomerBill, error) {
	if strings.TrimSpace(in.InvoiceNumber) == "" || in.TransactionDate == nil || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseChannel != "" && !validPurchaseChannels[in.PurchaseChannel] {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod != "" && !validPaymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountApplied.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.BillItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.BillItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Category:    it.Category,
			SubCategory: it.SubCategory,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	bill := &entity.CustomerBill{
		VendorID:        vendorID,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		InvoiceNumber:   in.InvoiceNumber,
		TransactionDate: *in.TransactionDate,
		PurchaseChannel: in.PurchaseChannel,
		PaymentMethod:   in.PaymentMethod,
		Items:           items,
		DiscountApplied: in.DiscountApplied,
		Notes:           in.Notes,
	}
	if in.Demographics != nil {
		bill.Demographics = *in.Demographics
	}
	if in.Meta != nil {
		bill.Meta = *in.Meta
	}
	return bill, nil
}
