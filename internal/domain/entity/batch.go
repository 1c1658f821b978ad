package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa un lote de compra de un medicamento. Un medicamento tiene
// muchos lotes; Quantity son las unidades sin vender que quedan en el lote y
// solo la muta el asignador FEFO (ventas) o el reabastecimiento.
type Batch struct {
	ID            string
	MedicineID    string
	Supplier      string // máx. 100 caracteres, obligatorio
	Quantity      int64  // unidades restantes, nunca negativa
	PurchaseDate  time.Time
	ExpiryDate    time.Time // ordena la asignación FEFO
	PurchasePrice decimal.Decimal
	SettingPrice  decimal.Decimal // precio de venta
	DeletedAt     *time.Time      // soft delete; lotes borrados quedan fuera de toda consulta de stock
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica si el lote participa en consultas de stock y asignación.
func (b *Batch) IsActive() bool {
	return b.DeletedAt == nil
}
