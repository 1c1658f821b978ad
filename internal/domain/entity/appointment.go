package entity

import "time"

// Appointment representa una cita médica agendada.
type Appointment struct {
	ID          string
	PatientName string // obligatorio
	PatientID   string // obligatorio
	DoctorName  string // obligatorio
	DoctorRole  string
	Date        string // yyyy-mm-dd, obligatorio
	Time        string // obligatorio
	Room        string
	Reason      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
