package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, patient_name, patient_id, doctor_name, doctor_role, date, time, room, reason, notes, created_at, updated_at`

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_name, patient_id, doctor_name, doctor_role, date, time, room, reason, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		appt.ID, appt.PatientName, appt.PatientID, appt.DoctorName, nullIfEmpty(appt.DoctorRole),
		appt.Date, appt.Time, nullIfEmpty(appt.Room), nullIfEmpty(appt.Reason), nullIfEmpty(appt.Notes),
		appt.CreatedAt, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	appt, err := scanAppointment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// List ordena por fecha y hora ascendente.
func (r *AppointmentRepo) List() ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date ASC, time ASC`
	return r.queryAppointments(query)
}

// ListByPatient filtra por paciente.
func (r *AppointmentRepo) ListByPatient(patientID string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_id = $1 ORDER BY date ASC, time ASC`
	return r.queryAppointments(query, patientID)
}

// ListByDate filtra por fecha.
func (r *AppointmentRepo) ListByDate(date string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE date = $1 ORDER BY time ASC`
	return r.queryAppointments(query, date)
}

// Update actualiza una cita.
func (r *AppointmentRepo) Update(appt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_name = $2, patient_id = $3, doctor_name = $4, doctor_role = $5,
		    date = $6, time = $7, room = $8, reason = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		appt.ID, appt.PatientName, appt.PatientID, appt.DoctorName, nullIfEmpty(appt.DoctorRole),
		appt.Date, appt.Time, nullIfEmpty(appt.Room), nullIfEmpty(appt.Reason), nullIfEmpty(appt.Notes),
		appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cita.
func (r *AppointmentRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) queryAppointments(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	var appts []*entity.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, appt)
	}
	return appts, rows.Err()
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var (
		appt                            entity.Appointment
		doctorRole, room, reason, notes *string
	)
	err := row.Scan(
		&appt.ID, &appt.PatientName, &appt.PatientID, &appt.DoctorName, &doctorRole,
		&appt.Date, &appt.Time, &room, &reason, &notes,
		&appt.CreatedAt, &appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	appt.DoctorRole = deref(doctorRole)
	appt.Room = deref(room)
	appt.Reason = deref(reason)
	appt.Notes = deref(notes)
	return &appt, nil
}
