package entity

import "github.com/shopspring/decimal"

// Tipos de línea de factura. Solo las líneas de tipo medicina descuentan stock.
const (
	ItemTypeMedicine = "medicine"
	ItemTypeService  = "service"
)

// InvoiceDetail representa una línea de detalle de una factura.
// ItemName e ItemPrice son una copia del valor al momento de la venta:
// el histórico no se recalcula si el catálogo cambia después.
type InvoiceDetail struct {
	ID             string
	InvoiceID      string // referencia al identificador externo de la factura
	ItemID         string // id de medicamento para líneas tipo "medicine"
	ItemName       string
	ItemPrice      decimal.Decimal
	ItemQuantity   int64
	ItemTotalPrice decimal.Decimal
	Type           string
}
