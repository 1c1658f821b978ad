package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas y detalles.
// Las facturas son inmutables después de crearse: no hay Update.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateDetail(detail *entity.InvoiceDetail) error
	GetByInvoiceID(invoiceID string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error)
}
