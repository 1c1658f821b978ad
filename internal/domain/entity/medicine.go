package entity

import "time"

// Medicine representa un medicamento del catálogo de la farmacia.
// El stock total NO se almacena aquí: se calcula como la suma de Quantity
// de sus lotes activos, para evitar una segunda fuente de verdad.
type Medicine struct {
	ID           string
	GroupID      string // referencia a MedicineGroup
	Name         string // máx. 100 caracteres, obligatorio
	Description  string
	Photo        string
	BarcodeValue string
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MedicineStock agregado calculado sobre los lotes activos de un medicamento.
type MedicineStock struct {
	Total   int64 `json:"total"`   // suma de Quantity de lotes activos
	Batches int   `json:"batches"` // cantidad de lotes activos
}
