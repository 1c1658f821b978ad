package entity

import "time"

// Estados de asistencia.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
)

// Estados de aprobación de un registro de asistencia.
const (
	ApprovalPending  = "pending"
	ApprovalAccepted = "accepted"
	ApprovalRejected = "rejected"
)

// Attendance registra la asistencia de un miembro del personal en una fecha.
// OrganizationID y NetworkID se resuelven al crear el registro (validación
// del check-in por QR contra la organización y su red).
type Attendance struct {
	ID             string
	Profile        string
	Name           string // obligatorio
	StaffID        string // obligatorio
	Role           string
	OrganizationID string
	NetworkID      string
	Room           string
	Shift          string
	CheckInTime    string
	CheckOutTime   string
	Date           string // yyyy-mm-dd, obligatorio
	Status         string // present | absent | late
	Approval       string // pending | accepted | rejected
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
