package entity

import "time"

// Organization representa la clínica dueña del sistema de asistencia.
// El sistema admite UNA sola organización (regla del módulo de asistencia).
type Organization struct {
	ID         string
	Name       string // obligatorio
	Type       string
	RecordType string
	NetworkID  string // red asociada para validar check-ins
	Logo       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
