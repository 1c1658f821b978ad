package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// MedicineRepository define el puerto de persistencia para medicamentos.
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id string) (*entity.Medicine, error)
	List() ([]*entity.Medicine, error)
	// ListByGroup filtra por grupo con búsqueda opcional por nombre
	// (case-insensitive); search vacío lista todo el grupo.
	ListByGroup(groupID, search string) ([]*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	SoftDelete(id string) error
}

// MedicineGroupRepository define el puerto de persistencia para grupos de medicamentos.
type MedicineGroupRepository interface {
	Create(group *entity.MedicineGroup) error
	GetByID(id string) (*entity.MedicineGroup, error)
	GetByName(groupName string) (*entity.MedicineGroup, error)
	List() ([]*entity.MedicineGroup, error)
	Update(group *entity.MedicineGroup) error
	SoftDelete(id string) error
}
