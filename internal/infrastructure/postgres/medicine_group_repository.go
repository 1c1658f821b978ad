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

var _ repository.MedicineGroupRepository = (*MedicineGroupRepo)(nil)

// MedicineGroupRepo implementación del puerto MedicineGroupRepository sobre PostgreSQL.
type MedicineGroupRepo struct {
	q Querier
}

// NewMedicineGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineGroupRepository(q Querier) *MedicineGroupRepo {
	return &MedicineGroupRepo{q: q}
}

// Create persiste un nuevo grupo; el nombre es único.
func (r *MedicineGroupRepo) Create(group *entity.MedicineGroup) error {
	query := `
		INSERT INTO medicine_groups (id, group_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, group.ID, group.GroupName, group.CreatedAt, group.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo activo por ID.
func (r *MedicineGroupRepo) GetByID(id string) (*entity.MedicineGroup, error) {
	query := `
		SELECT id, group_name, deleted_at, created_at, updated_at
		FROM medicine_groups WHERE id = $1 AND deleted_at IS NULL`
	return r.getOne(query, id)
}

// GetByName obtiene un grupo activo por nombre.
func (r *MedicineGroupRepo) GetByName(groupName string) (*entity.MedicineGroup, error) {
	query := `
		SELECT id, group_name, deleted_at, created_at, updated_at
		FROM medicine_groups WHERE group_name = $1 AND deleted_at IS NULL`
	return r.getOne(query, groupName)
}

// List lista los grupos ordenados por nombre.
func (r *MedicineGroupRepo) List() ([]*entity.MedicineGroup, error) {
	query := `
		SELECT id, group_name, deleted_at, created_at, updated_at
		FROM medicine_groups WHERE deleted_at IS NULL ORDER BY group_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query medicine groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.MedicineGroup
	for rows.Next() {
		var g entity.MedicineGroup
		if err := rows.Scan(&g.ID, &g.GroupName, &g.DeletedAt, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// Update renombra el grupo.
func (r *MedicineGroupRepo) Update(group *entity.MedicineGroup) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE medicine_groups SET group_name = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`,
		group.ID, group.GroupName, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medicine group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el grupo como borrado.
func (r *MedicineGroupRepo) SoftDelete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE medicine_groups SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete medicine group: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MedicineGroupRepo) getOne(query string, arg any) (*entity.MedicineGroup, error) {
	var g entity.MedicineGroup
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&g.ID, &g.GroupName, &g.DeletedAt, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine group: %w", err)
	}
	return &g, nil
}
