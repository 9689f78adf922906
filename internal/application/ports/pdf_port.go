package ports

import "github.com/vendorsahyog/riskguard-api/internal/domain/entity"

// BillPDFGenerator genera el PDF imprimible de una factura de cliente.
type BillPDFGenerator interface {
	GenerateBillPDF(bill *entity.CustomerBill) ([]byte, error)
}
