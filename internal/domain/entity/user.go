package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleDoctor     = "doctor"
	RoleStaff      = "staff"
	RolePharmacist = "pharmacist"
)

// User representa un usuario del sistema (personal de la clínica).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
