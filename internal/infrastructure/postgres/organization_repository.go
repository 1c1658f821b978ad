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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationColumns = `id, name, type, record_type, network_id, logo, created_at, updated_at`

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste la organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, type, record_type, network_id, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, nullIfEmpty(org.Type), nullIfEmpty(org.RecordType),
		nullIfEmpty(org.NetworkID), nullIfEmpty(org.Logo), org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene la organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	return r.getOne(query, id)
}

// GetByName obtiene la organización por nombre.
func (r *OrganizationRepo) GetByName(name string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE name = $1`
	return r.getOne(query, name)
}

// Any devuelve la organización existente, o nil si aún no hay ninguna.
func (r *OrganizationRepo) Any() (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY created_at ASC LIMIT 1`
	var org entity.Organization
	err := r.scanRow(r.q.QueryRow(context.Background(), query), &org)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("any organization: %w", err)
	}
	return &org, nil
}

// List devuelve las organizaciones (a lo sumo una).
func (r *OrganizationRepo) List() ([]*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*entity.Organization
	for rows.Next() {
		var org entity.Organization
		if err := r.scanRow(rows, &org); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, &org)
	}
	return orgs, rows.Err()
}

// Update actualiza la organización.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, type = $3, record_type = $4, network_id = $5, logo = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, nullIfEmpty(org.Type), nullIfEmpty(org.RecordType),
		nullIfEmpty(org.NetworkID), nullIfEmpty(org.Logo), org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la organización.
func (r *OrganizationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepo) getOne(query string, arg any) (*entity.Organization, error) {
	var org entity.Organization
	err := r.scanRow(r.q.QueryRow(context.Background(), query, arg), &org)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepo) scanRow(row pgx.Row, org *entity.Organization) error {
	var orgType, recordType, networkID, logo *string
	err := row.Scan(&org.ID, &org.Name, &orgType, &recordType, &networkID, &logo, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return err
	}
	org.Type = deref(orgType)
	org.RecordType = deref(recordType)
	org.NetworkID = deref(networkID)
	org.Logo = deref(logo)
	return nil
}
