package billing

import (
	"context"

	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de lotes y facturación. Commit solo si fn retorna nil; cualquier
// error revierte factura, detalles y descuentos de lotes en bloque.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// StockAllocator interfaz para integrar facturación con farmacia.
// AllocateInTx descuenta stock del medicamento usando los repositorios del
// caller (misma transacción). Si retorna error (ej: ErrInsufficientStock),
// el caller debe hacer rollback.
type StockAllocator interface {
	AllocateInTx(batchRepo repository.BatchRepository, medicine *entity.Medicine, quantity int64) error
}

// ReceiptPDFGenerator genera el recibo PDF de una factura ya persistida.
type ReceiptPDFGenerator interface {
	GenerateReceipt(invoice *entity.Invoice, details []*entity.InvoiceDetail) ([]byte, error)
}
