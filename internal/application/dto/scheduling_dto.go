package dto

import "time"

// CreateAppointmentRequest body para POST /api/appointments.
type CreateAppointmentRequest struct {
	PatientName string `json:"patientName"`
	PatientID   string `json:"patientId"`
	DoctorName  string `json:"doctorName"`
	DoctorRole  string `json:"doctorRole,omitempty"`
	Date        string `json:"date"` // yyyy-mm-dd
	Time        string `json:"time"`
	Room        string `json:"room,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest body para PUT /api/appointments/:id.
type UpdateAppointmentRequest struct {
	PatientName *string `json:"patientName,omitempty"`
	PatientID   *string `json:"patientId,omitempty"`
	DoctorName  *string `json:"doctorName,omitempty"`
	DoctorRole  *string `json:"doctorRole,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Room        *string `json:"room,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse cita en respuestas.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patientName"`
	PatientID   string    `json:"patientId"`
	DoctorName  string    `json:"doctorName"`
	DoctorRole  string    `json:"doctorRole,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Room        string    `json:"room,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
