package clinic

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// OrganizationUseCase administra la organización del sistema.
// Regla del módulo: se admite UNA sola organización; crear una segunda
// es un conflicto, no un reemplazo.
type OrganizationUseCase struct {
	orgRepo     repository.OrganizationRepository
	networkRepo repository.NetworkRepository
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(orgRepo repository.OrganizationRepository, networkRepo repository.NetworkRepository) *OrganizationUseCase {
	return &OrganizationUseCase{orgRepo: orgRepo, networkRepo: networkRepo}
}

// Create registra la organización. Si ya existe una, retorna ErrConflict.
// La red puede venir por id o como objeto {name, ipAddress} a crear.
func (uc *OrganizationUseCase) Create(in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.orgRepo.Any()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	networkID, err := uc.resolveNetwork(in.Network)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org := &entity.Organization{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Type:       in.Type,
		RecordType: in.RecordType,
		NetworkID:  networkID,
		Logo:       in.Logo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}
	resp := toOrganizationResponse(org)
	return &resp, nil
}

func (uc *OrganizationUseCase) resolveNetwork(input *dto.NetworkInput) (string, error) {
	if input == nil {
		return "", nil
	}
	if input.ID != "" {
		network, err := uc.networkRepo.GetByID(input.ID)
		if err != nil {
			return "", err
		}
		if network == nil {
			return "", domain.ErrNotFound
		}
		return network.ID, nil
	}
	for _, hint := range []string{input.Name, input.IPAddress} {
		if hint == "" {
			continue
		}
		network, err := uc.networkRepo.GetByNameOrIP(hint)
		if err != nil {
			return "", err
		}
		if network != nil {
			return network.ID, nil
		}
	}
	if input.Name != "" && input.IPAddress != "" {
		now := time.Now()
		network := &entity.Network{
			ID:        uuid.New().String(),
			Name:      input.Name,
			IPAddress: input.IPAddress,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.networkRepo.Create(network); err != nil {
			return "", err
		}
		return network.ID, nil
	}
	return "", nil
}

// GetByID devuelve la organización.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrganizationResponse(org)
	return &resp, nil
}

// List devuelve las organizaciones (a lo sumo una).
func (uc *OrganizationUseCase) List() ([]dto.OrganizationResponse, error) {
	orgs, err := uc.orgRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, toOrganizationResponse(org))
	}
	return out, nil
}

// Update aplica cambios parciales sobre la organización.
func (uc *OrganizationUseCase) Update(id string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		org.Name = *in.Name
	}
	if in.Type != nil {
		org.Type = *in.Type
	}
	if in.RecordType != nil {
		org.RecordType = *in.RecordType
	}
	if in.Network != nil {
		networkID, err := uc.resolveNetwork(in.Network)
		if err != nil {
			return nil, err
		}
		org.NetworkID = networkID
	}
	if in.Logo != nil {
		org.Logo = *in.Logo
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(org); err != nil {
		return nil, err
	}
	resp := toOrganizationResponse(org)
	return &resp, nil
}

// Delete elimina la organización.
func (uc *OrganizationUseCase) Delete(id string) error {
	org, err := uc.orgRepo.GetByID(id)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	return uc.orgRepo.Delete(id)
}

func toOrganizationResponse(org *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:         org.ID,
		Name:       org.Name,
		Type:       org.Type,
		RecordType: org.RecordType,
		NetworkID:  org.NetworkID,
		Logo:       org.Logo,
		CreatedAt:  org.CreatedAt,
		UpdatedAt:  org.UpdatedAt,
	}
}

// NetworkUseCase administra las redes autorizadas para el check-in.
type NetworkUseCase struct {
	networkRepo repository.NetworkRepository
}

// NewNetworkUseCase construye el caso de uso.
func NewNetworkUseCase(networkRepo repository.NetworkRepository) *NetworkUseCase {
	return &NetworkUseCase{networkRepo: networkRepo}
}

// Create registra una red; la IP es única.
func (uc *NetworkUseCase) Create(in dto.CreateNetworkRequest) (*dto.NetworkResponse, error) {
	if in.Name == "" || in.IPAddress == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.networkRepo.GetByNameOrIP(in.IPAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	network := &entity.Network{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IPAddress: in.IPAddress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.networkRepo.Create(network); err != nil {
		return nil, err
	}
	resp := toNetworkResponse(network)
	return &resp, nil
}

// GetByID devuelve una red.
func (uc *NetworkUseCase) GetByID(id string) (*dto.NetworkResponse, error) {
	network, err := uc.networkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if network == nil {
		return nil, domain.ErrNotFound
	}
	resp := toNetworkResponse(network)
	return &resp, nil
}

// List devuelve todas las redes.
func (uc *NetworkUseCase) List() ([]dto.NetworkResponse, error) {
	networks, err := uc.networkRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NetworkResponse, 0, len(networks))
	for _, n := range networks {
		out = append(out, toNetworkResponse(n))
	}
	return out, nil
}

// Update renombra la red o cambia su IP.
func (uc *NetworkUseCase) Update(id string, in dto.CreateNetworkRequest) (*dto.NetworkResponse, error) {
	network, err := uc.networkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if network == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		network.Name = in.Name
	}
	if in.IPAddress != "" && in.IPAddress != network.IPAddress {
		existing, err := uc.networkRepo.GetByNameOrIP(in.IPAddress)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		network.IPAddress = in.IPAddress
	}
	network.UpdatedAt = time.Now()
	if err := uc.networkRepo.Update(network); err != nil {
		return nil, err
	}
	resp := toNetworkResponse(network)
	return &resp, nil
}

// Delete elimina una red.
func (uc *NetworkUseCase) Delete(id string) error {
	network, err := uc.networkRepo.GetByID(id)
	if err != nil {
		return err
	}
	if network == nil {
		return domain.ErrNotFound
	}
	return uc.networkRepo.Delete(id)
}

func toNetworkResponse(n *entity.Network) dto.NetworkResponse {
	return dto.NetworkResponse{
		ID:        n.ID,
		Name:      n.Name,
		IPAddress: n.IPAddress,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
