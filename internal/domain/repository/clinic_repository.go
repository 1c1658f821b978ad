package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para la organización.
// El sistema admite una sola organización; Any() soporta esa regla.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByName(name string) (*entity.Organization, error)
	// Any devuelve la organización existente, o nil si aún no hay ninguna.
	Any() (*entity.Organization, error)
	List() ([]*entity.Organization, error)
	Update(org *entity.Organization) error
	Delete(id string) error
}

// NetworkRepository define el puerto de persistencia para redes autorizadas.
type NetworkRepository interface {
	Create(network *entity.Network) error
	GetByID(id string) (*entity.Network, error)
	// GetByNameOrIP busca por nombre o por dirección IP exacta.
	GetByNameOrIP(value string) (*entity.Network, error)
	List() ([]*entity.Network, error)
	Update(network *entity.Network) error
	Delete(id string) error
}
