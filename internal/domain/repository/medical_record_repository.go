package repository

import "github.com/jhoicas/clinica-api/internal/domain/entity"

// MedicalRecordRepository define el puerto de persistencia para historiales médicos.
type MedicalRecordRepository interface {
	Create(record *entity.MedicalRecord) error
	GetByID(id string) (*entity.MedicalRecord, error)
	GetByRecordID(recordID string) (*entity.MedicalRecord, error)
	List() ([]*entity.MedicalRecord, error)
	Update(record *entity.MedicalRecord) error
	SoftDelete(id string) error
}
