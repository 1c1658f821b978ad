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

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

const medicalRecordColumns = `id, record_id, patient, visit, medical_history, vital_signs, physical_examination, diagnosis, treatment_plan, status, deleted_at, created_at, updated_at`

// MedicalRecordRepo implementación del puerto MedicalRecordRepository sobre
// PostgreSQL. Las secciones clínicas se guardan en columnas JSONB: el backend
// no interpreta su estructura.
type MedicalRecordRepo struct {
	q Querier
}

// NewMedicalRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicalRecordRepository(q Querier) *MedicalRecordRepo {
	return &MedicalRecordRepo{q: q}
}

// Create persiste un historial; el record_id externo es único.
func (r *MedicalRecordRepo) Create(record *entity.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (id, record_id, patient, visit, medical_history, vital_signs, physical_examination, diagnosis, treatment_plan, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.RecordID,
		record.Patient, record.Visit, record.MedicalHistory, record.VitalSigns,
		record.PhysicalExamination, record.Diagnosis, record.TreatmentPlan,
		record.Status, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medical record: %w", err)
	}
	return nil
}

// GetByID obtiene un historial no borrado por ID interno.
func (r *MedicalRecordRepo) GetByID(id string) (*entity.MedicalRecord, error) {
	query := `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE id = $1 AND deleted_at IS NULL`
	return r.getOne(query, id)
}

// GetByRecordID obtiene un historial por su identificador externo.
func (r *MedicalRecordRepo) GetByRecordID(recordID string) (*entity.MedicalRecord, error) {
	query := `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE record_id = $1 AND deleted_at IS NULL`
	return r.getOne(query, recordID)
}

// List devuelve los historiales no borrados, más recientes primero.
func (r *MedicalRecordRepo) List() ([]*entity.MedicalRecord, error) {
	query := `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query medical records: %w", err)
	}
	defer rows.Close()

	var records []*entity.MedicalRecord
	for rows.Next() {
		rec, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update reemplaza las secciones y el estado del historial.
func (r *MedicalRecordRepo) Update(record *entity.MedicalRecord) error {
	query := `
		UPDATE medical_records
		SET patient = $2, visit = $3, medical_history = $4, vital_signs = $5,
		    physical_examination = $6, diagnosis = $7, treatment_plan = $8,
		    status = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		record.ID,
		record.Patient, record.Visit, record.MedicalHistory, record.VitalSigns,
		record.PhysicalExamination, record.Diagnosis, record.TreatmentPlan,
		record.Status, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medical record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el historial como borrado (los historiales no se destruyen).
func (r *MedicalRecordRepo) SoftDelete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE medical_records SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete medical record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MedicalRecordRepo) getOne(query string, arg any) (*entity.MedicalRecord, error) {
	rec, err := scanMedicalRecord(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medical record: %w", err)
	}
	return rec, nil
}

func scanMedicalRecord(row pgx.Row) (*entity.MedicalRecord, error) {
	var rec entity.MedicalRecord
	err := row.Scan(
		&rec.ID, &rec.RecordID,
		&rec.Patient, &rec.Visit, &rec.MedicalHistory, &rec.VitalSigns,
		&rec.PhysicalExamination, &rec.Diagnosis, &rec.TreatmentPlan,
		&rec.Status, &rec.DeletedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
