package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// AttendanceRepository define el puerto de persistencia para asistencia.
type AttendanceRepository interface {
	Create(att *entity.Attendance) error
	GetByID(id string) (*entity.Attendance, error)
	// List devuelve los registros más recientes primero.
	List() ([]*entity.Attendance, error)
	ListByStaffAndDate(staffID, date string) ([]*entity.Attendance, error)
	Update(att *entity.Attendance) error
	Delete(id string) error
}
