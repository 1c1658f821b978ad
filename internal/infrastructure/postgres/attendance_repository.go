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

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, profile, name, staff_id, role, organization_id, network_id, room, shift, check_in_time, check_out_time, date, status, approval, notes, created_at, updated_at`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persiste un registro de asistencia.
func (r *AttendanceRepo) Create(att *entity.Attendance) error {
	query := `
		INSERT INTO attendances (id, profile, name, staff_id, role, organization_id, network_id, room, shift, check_in_time, check_out_time, date, status, approval, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		att.ID, nullIfEmpty(att.Profile), att.Name, att.StaffID, nullIfEmpty(att.Role),
		nullIfEmpty(att.OrganizationID), nullIfEmpty(att.NetworkID),
		nullIfEmpty(att.Room), nullIfEmpty(att.Shift),
		nullIfEmpty(att.CheckInTime), nullIfEmpty(att.CheckOutTime),
		att.Date, att.Status, att.Approval, nullIfEmpty(att.Notes),
		att.CreatedAt, att.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *AttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	att, err := scanAttendance(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return att, nil
}

// List devuelve los registros más recientes primero.
func (r *AttendanceRepo) List() ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances ORDER BY date DESC, created_at DESC`
	return r.queryAttendances(query)
}

// ListByStaffAndDate filtra por miembro del personal y fecha.
func (r *AttendanceRepo) ListByStaffAndDate(staffID, date string) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE staff_id = $1 AND date = $2 ORDER BY created_at DESC`
	return r.queryAttendances(query, staffID, date)
}

// Update actualiza un registro de asistencia.
func (r *AttendanceRepo) Update(att *entity.Attendance) error {
	query := `
		UPDATE attendances
		SET profile = $2, name = $3, role = $4, organization_id = $5, network_id = $6,
		    room = $7, shift = $8, check_in_time = $9, check_out_time = $10,
		    date = $11, status = $12, approval = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		att.ID, nullIfEmpty(att.Profile), att.Name, nullIfEmpty(att.Role),
		nullIfEmpty(att.OrganizationID), nullIfEmpty(att.NetworkID),
		nullIfEmpty(att.Room), nullIfEmpty(att.Shift),
		nullIfEmpty(att.CheckInTime), nullIfEmpty(att.CheckOutTime),
		att.Date, att.Status, att.Approval, nullIfEmpty(att.Notes), att.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro de asistencia.
func (r *AttendanceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AttendanceRepo) queryAttendances(query string, args ...any) ([]*entity.Attendance, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendances: %w", err)
	}
	defer rows.Close()

	var records []*entity.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var (
		att                                           entity.Attendance
		profile, role, orgID, netID                   *string
		room, shift, checkIn, checkOut, notes         *string
	)
	err := row.Scan(
		&att.ID, &profile, &att.Name, &att.StaffID, &role, &orgID, &netID,
		&room, &shift, &checkIn, &checkOut,
		&att.Date, &att.Status, &att.Approval, &notes,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	att.Profile = deref(profile)
	att.Role = deref(role)
	att.OrganizationID = deref(orgID)
	att.NetworkID = deref(netID)
	att.Room = deref(room)
	att.Shift = deref(shift)
	att.CheckInTime = deref(checkIn)
	att.CheckOutTime = deref(checkOut)
	att.Notes = deref(notes)
	return &att, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
