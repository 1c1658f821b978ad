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

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

const medicineColumns = `id, group_medicine_id, name, description, photo, barcode_value, deleted_at, created_at, updated_at`

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *MedicineRepo) Create(medicine *entity.Medicine) error {
	query := `
		INSERT INTO medicines (id, group_medicine_id, name, description, photo, barcode_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.GroupID, medicine.Name,
		nullIfEmpty(medicine.Description), nullIfEmpty(medicine.Photo), nullIfEmpty(medicine.BarcodeValue),
		medicine.CreatedAt, medicine.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento activo por ID.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE id = $1 AND deleted_at IS NULL`
	m, err := scanMedicine(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return m, nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *MedicineRepo) List() ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE deleted_at IS NULL ORDER BY name ASC`
	return r.queryMedicines(query)
}

// ListByGroup filtra por grupo con búsqueda opcional por nombre (ILIKE).
func (r *MedicineRepo) ListByGroup(groupID, search string) ([]*entity.Medicine, error) {
	query := `
		SELECT ` + medicineColumns + `
		FROM medicines
		WHERE group_medicine_id = $1 AND deleted_at IS NULL
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name ASC`
	return r.queryMedicines(query, groupID, search)
}

// Update actualiza un medicamento existente.
func (r *MedicineRepo) Update(medicine *entity.Medicine) error {
	query := `
		UPDATE medicines
		SET group_medicine_id = $2, name = $3, description = $4, photo = $5, barcode_value = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		medicine.ID, medicine.GroupID, medicine.Name,
		nullIfEmpty(medicine.Description), nullIfEmpty(medicine.Photo), nullIfEmpty(medicine.BarcodeValue),
		medicine.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el medicamento como borrado.
func (r *MedicineRepo) SoftDelete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE medicines SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MedicineRepo) queryMedicines(query string, args ...any) ([]*entity.Medicine, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query medicines: %w", err)
	}
	defer rows.Close()

	var medicines []*entity.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

func scanMedicine(row pgx.Row) (*entity.Medicine, error) {
	var (
		m                         entity.Medicine
		description, photo, code *string
	)
	err := row.Scan(&m.ID, &m.GroupID, &m.Name, &description, &photo, &code, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		m.Description = *description
	}
	if photo != nil {
		m.Photo = *photo
	}
	if code != nil {
		m.BarcodeValue = *code
	}
	return &m, nil
}
