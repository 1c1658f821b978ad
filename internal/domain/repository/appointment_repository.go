package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// AppointmentRepository define el puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(appt *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	// List ordena por fecha y hora ascendente.
	List() ([]*entity.Appointment, error)
	ListByPatient(patientID string) ([]*entity.Appointment, error)
	ListByDate(date string) ([]*entity.Appointment, error)
	Update(appt *entity.Appointment) error
	Delete(id string) error
}
