package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura del punto de venta.
// Inmutable después de su creación: no existe endpoint de actualización.
type Invoice struct {
	ID            string
	InvoiceID     string // identificador externo, único
	CustomerPhone string
	Date          time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}
