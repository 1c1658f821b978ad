package entity

import "time"

// Network representa una red local autorizada para el check-in por QR.
// IPAddress es única.
type Network struct {
	ID        string
	Name      string // obligatorio
	IPAddress string // obligatorio, único
	CreatedAt time.Time
	UpdatedAt time.Time
}
