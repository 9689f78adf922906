package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendorsahyog/riskguard-api/internal/domain/entity"
)

// BillItemInput una línea de factura en el request. El totalPrice que envíe
// el caller se ignora; siempre se recalcula quantity × unitPrice.
type BillItemInput struct {
	ProductID   string          `json:"productId,omitempty"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category,omitempty"`
	SubCategory string          `json:"subCategory,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateCustomerBillRequest request de POST /api/customer-billing.
type CreateCustomerBillRequest struct {
	CustomerID      string                       `json:"customerId,omitempty"`
	CustomerName    string                       `json:"customerName,omitempty"`
	CustomerEmail   string                       `json:"customerEmail,omitempty"`
	CustomerPhone   string                       `json:"customerPhone,omitempty"`
	Demographics    *entity.CustomerDemographics `json:"demographics,omitempty"`
	InvoiceNumber   string                       `json:"invoiceNumber"`
	TransactionDate *time.Time                   `json:"transactionDate"`
	PurchaseChannel string                       `json:"purchaseChannel,omitempty"`
	PaymentMethod   string                       `json:"paymentMethod,omitempty"`
	Items           []BillItemInput              `json:"items"`
	DiscountApplied decimal.Decimal              `json:"discountApplied"`
	Meta            *entity.BillMeta             `json:"meta,omitempty"`
	Notes           string                       `json:"notes,omitempty"`
}
