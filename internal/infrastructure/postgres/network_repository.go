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

var _ repository.NetworkRepository = (*NetworkRepo)(nil)

// NetworkRepo implementación del puerto NetworkRepository sobre PostgreSQL.
type NetworkRepo struct {
	q Querier
}

// NewNetworkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNetworkRepository(q Querier) *NetworkRepo {
	return &NetworkRepo{q: q}
}

// Create persiste una red; la IP es única.
func (r *NetworkRepo) Create(network *entity.Network) error {
	query := `
		INSERT INTO networks (id, name, ip_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		network.ID, network.Name, network.IPAddress, network.CreatedAt, network.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert network: %w", err)
	}
	return nil
}

// GetByID obtiene una red por ID.
func (r *NetworkRepo) GetByID(id string) (*entity.Network, error) {
	query := `SELECT id, name, ip_address, created_at, updated_at FROM networks WHERE id = $1`
	return r.getOne(query, id)
}

// GetByNameOrIP busca por nombre o por dirección IP exacta.
func (r *NetworkRepo) GetByNameOrIP(value string) (*entity.Network, error) {
	query := `
		SELECT id, name, ip_address, created_at, updated_at
		FROM networks WHERE name = $1 OR ip_address = $1 LIMIT 1`
	return r.getOne(query, value)
}

// List devuelve todas las redes.
func (r *NetworkRepo) List() ([]*entity.Network, error) {
	query := `SELECT id, name, ip_address, created_at, updated_at FROM networks ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query networks: %w", err)
	}
	defer rows.Close()

	var networks []*entity.Network
	for rows.Next() {
		var n entity.Network
		if err := rows.Scan(&n.ID, &n.Name, &n.IPAddress, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan network: %w", err)
		}
		networks = append(networks, &n)
	}
	return networks, rows.Err()
}

// Update actualiza una red.
func (r *NetworkRepo) Update(network *entity.Network) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE networks SET name = $2, ip_address = $3, updated_at = $4 WHERE id = $1`,
		network.ID, network.Name, network.IPAddress, network.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update network: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una red.
func (r *NetworkRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM networks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NetworkRepo) getOne(query string, arg any) (*entity.Network, error) {
	var n entity.Network
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&n.ID, &n.Name, &n.IPAddress, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get network: %w", err)
	}
	return &n, nil
}
