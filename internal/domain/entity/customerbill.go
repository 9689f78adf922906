package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canales de compra y métodos de pago válidos.
const (
	ChannelOnline  = "ONLINE"
	ChannelInStore = "IN_STORE"
	ChannelApp     = "APP"
	ChannelPartner = "PARTNER"
)

const (
	PaymentCard       = "CARD"
	PaymentUPI        = "UPI"
	PaymentCash       = "CASH"
	PaymentWallet     = "WALLET"
	PaymentNetBanking = "NET_BANKING"
)

// BillItem una línea de factura. TotalPrice es derivado
// (Quantity × UnitPrice) y se recalcula siempre en servidor.
type BillItem struct {
	ProductID   string          `json:"productId,omitempty"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category,omitempty"`
	SubCategory string          `json:"subCategory,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// CustomerDemographics segmento demográfico del cliente (opcional).
type CustomerDemographics struct {
	AgeGroup      string `json:"ageGroup,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Location      string `json:"location,omitempty"`
	IncomeBracket string `json:"incomeBracket,omitempty"`
}

// BillMeta metadatos de la transacción.
type BillMeta struct {
	Platform   string `json:"platform,omitempty"`
	Device     string `json:"device,omitempty"`
	IPLocation string `json:"ipLocation,omitempty"`
}

// CustomerBill una factura de cliente final registrada por el vendor.
// Los totales son derivados: TotalAmount = Σ item.TotalPrice y
// FinalAmountPaid = TotalAmount − DiscountApplied.
type CustomerBill struct {
	ID              string
	VendorID        string
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Demographics    CustomerDemographics
	InvoiceNumber   string
	TransactionDate time.Time
	PurchaseChannel string // ver constantes Channel*
	PaymentMethod   string // ver constantes Payment*
	Items           []BillItem
	TotalAmount     decimal.Decimal
	DiscountApplied decimal.Decimal
	FinalAmountPaid decimal.Decimal
	Meta            BillMeta
	Notes           string
	IsRefunded      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecalculateTotals recalcula las líneas y los totales de la factura,
// ignorando cualquier total enviado por el caller.
func (b *CustomerBill) RecalculateTotals() {
	total := decimal.Zero
	for i := range b.Items {
		b.Items[i].TotalPrice = b.Items[i].UnitPrice.Mul(decimal.NewFromInt(b.Items[i].Quantity))
		total = total.Add(b.Items[i].TotalPrice)
	}
	b.TotalAmount = total
	b.FinalAmountPaid = total.Sub(b.DiscountApplied)
}
