package entity

import "time"

// MedicineGroup agrupa medicamentos por categoría (analgésicos, antibióticos, etc.).
type MedicineGroup struct {
	ID        string
	GroupName string // máx. 100 caracteres, obligatorio
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
