package pharmacy

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD para medicamentos. El stock NO se edita
// aquí: se calcula sobre los lotes activos.
type MedicineUseCase struct {
	medicineRepo repository.MedicineRepository
	groupRepo    repository.MedicineGroupRepository
	batchRepo    repository.BatchRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(
	medicineRepo repository.MedicineRepository,
	groupRepo repository.MedicineGroupRepository,
	batchRepo repository.BatchRepository,
) *MedicineUseCase {
	return &MedicineUseCase{medicineRepo: medicineRepo, groupRepo: groupRepo, batchRepo: batchRepo}
}

// Create registra un medicamento dentro de un grupo existente.
func (uc *MedicineUseCase) Create(in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if in.Name == "" || len(in.Name) > maxNameLen || in.GroupID == "" {
		return nil, domain.ErrInvalidInput
	}
	group, err := uc.groupRepo.GetByID(in.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	medicine := &entity.Medicine{
		ID:           uuid.New().String(),
		GroupID:      in.GroupID,
		Name:         in.Name,
		Description:  in.Description,
		Photo:        in.Photo,
		BarcodeValue: in.BarcodeValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.medicineRepo.Create(medicine); err != nil {
		return nil, err
	}
	resp := toMedicineResponse(medicine, group.GroupName, nil)
	return &resp, nil
}

// GetByID devuelve el medicamento con su stock agregado (suma de lotes activos).
func (uc *MedicineUseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.batchRepo.StockByMedicine(id)
	if err != nil {
		return nil, err
	}
	groupName := ""
	if group, err := uc.groupRepo.GetByID(medicine.GroupID); err == nil && group != nil {
		groupName = group.GroupName
	}
	resp := toMedicineResponse(medicine, groupName, stock)
	return &resp, nil
}

// List devuelve el catálogo completo (sin stock, que es costoso por medicamento).
func (uc *MedicineUseCase) List() ([]dto.MedicineResponse, error) {
	medicines, err := uc.medicineRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, toMedicineResponse(m, "", nil))
	}
	return out, nil
}

// ListByGroup filtra los medicamentos de un grupo con búsqueda opcional por nombre.
func (uc *MedicineUseCase) ListByGroup(groupID, search string) ([]dto.MedicineResponse, error) {
	group, err := uc.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	medicines, err := uc.medicineRepo.ListByGroup(groupID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, toMedicineResponse(m, group.GroupName, nil))
	}
	return out, nil
}

// Update aplica cambios parciales; campos nil no se tocan.
func (uc *MedicineUseCase) Update(id string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	if in.GroupID != nil {
		group, err := uc.groupRepo.GetByID(*in.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, domain.ErrNotFound
		}
		medicine.GroupID = *in.GroupID
	}
	if in.Name != nil {
		if *in.Name == "" || len(*in.Name) > maxNameLen {
			return nil, domain.ErrInvalidInput
		}
		medicine.Name = *in.Name
	}
	if in.Description != nil {
		medicine.Description = *in.Description
	}
	if in.Photo != nil {
		medicine.Photo = *in.Photo
	}
	if in.BarcodeValue != nil {
		medicine.BarcodeValue = *in.BarcodeValue
	}
	medicine.UpdatedAt = time.Now()
	if err := uc.medicineRepo.Update(medicine); err != nil {
		return nil, err
	}
	resp := toMedicineResponse(medicine, "", nil)
	return &resp, nil
}

// Delete marca el medicamento como borrado. Sus lotes quedan huérfanos pero
// inactivos para ventas (el catálogo ya no resuelve el id).
func (uc *MedicineUseCase) Delete(id string) error {
	medicine, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return domain.ErrNotFound
	}
	return uc.medicineRepo.SoftDelete(id)
}

func toMedicineResponse(m *entity.Medicine, groupName string, stock *entity.MedicineStock) dto.MedicineResponse {
	return dto.MedicineResponse{
		ID:           m.ID,
		GroupID:      m.GroupID,
		GroupName:    groupName,
		Name:         m.Name,
		Description:  m.Description,
		Photo:        m.Photo,
		BarcodeValue: m.BarcodeValue,
		Stock:        stock,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// MedicineGroupUseCase casos de uso CRUD para grupos de medicamentos.
type MedicineGroupUseCase struct {
	groupRepo repository.MedicineGroupRepository
}

// NewMedicineGroupUseCase construye el caso de uso.
func NewMedicineGroupUseCase(groupRepo repository.MedicineGroupRepository) *MedicineGroupUseCase {
	return &MedicineGroupUseCase{groupRepo: groupRepo}
}

// Create registra un grupo; el nombre es único.
func (uc *MedicineGroupUseCase) Create(in dto.CreateMedicineGroupRequest) (*dto.MedicineGroupResponse, error) {
	if in.GroupName == "" || len(in.GroupName) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.groupRepo.GetByName(in.GroupName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	group := &entity.MedicineGroup{
		ID:        uuid.New().String(),
		GroupName: in.GroupName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.groupRepo.Create(group); err != nil {
		return nil, err
	}
	resp := toGroupResponse(group)
	return &resp, nil
}

// GetByID devuelve un grupo.
func (uc *MedicineGroupUseCase) GetByID(id string) (*dto.MedicineGroupResponse, error) {
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	resp := toGroupResponse(group)
	return &resp, nil
}

// List devuelve todos los grupos.
func (uc *MedicineGroupUseCase) List() ([]dto.MedicineGroupResponse, error) {
	groups, err := uc.groupRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicineGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}
	return out, nil
}

// Update renombra el grupo.
func (uc *MedicineGroupUseCase) Update(id string, in dto.CreateMedicineGroupRequest) (*dto.MedicineGroupResponse, error) {
	if in.GroupName == "" || len(in.GroupName) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}
	group.GroupName = in.GroupName
	group.UpdatedAt = time.Now()
	if err := uc.groupRepo.Update(group); err != nil {
		return nil, err
	}
	resp := toGroupResponse(group)
	return &resp, nil
}

// Delete marca el grupo como borrado.
func (uc *MedicineGroupUseCase) Delete(id string) error {
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	return uc.groupRepo.SoftDelete(id)
}

func toGroupResponse(g *entity.MedicineGroup) dto.MedicineGroupResponse {
	return dto.MedicineGroupResponse{
		ID:        g.ID,
		GroupName: g.GroupName,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
