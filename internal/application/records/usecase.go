package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// UseCase casos de uso para historiales médicos. Las secciones clínicas son
// documentos JSON opacos; el backend valida presencia, no estructura.
type UseCase struct {
	recordRepo repository.MedicalRecordRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.MedicalRecordRepository) *UseCase {
	return &UseCase{recordRepo: recordRepo}
}

// Create registra un historial. El recordId externo es único.
func (uc *UseCase) Create(in dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if in.RecordID == "" || len(in.Patient) == 0 || len(in.Visit) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RecordStatusDraft
	}
	if !validRecordStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.recordRepo.GetByRecordID(in.RecordID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	record := &entity.MedicalRecord{
		ID:                  uuid.New().String(),
		RecordID:            in.RecordID,
		Patient:             in.Patient,
		Visit:               in.Visit,
		MedicalHistory:      in.MedicalHistory,
		VitalSigns:          in.VitalSigns,
		PhysicalExamination: in.PhysicalExamination,
		Diagnosis:           in.Diagnosis,
		TreatmentPlan:       in.TreatmentPlan,
		Status:              status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.recordRepo.Create(record); err != nil {
		return nil, err
	}
	resp := toResponse(record)
	return &resp, nil
}

// GetByID devuelve un historial por id interno o recordId externo.
func (uc *UseCase) GetByID(id string) (*dto.MedicalRecordResponse, error) {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record, err = uc.recordRepo.GetByRecordID(id)
		if err != nil {
			return nil, err
		}
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(record)
	return &resp, nil
}

// List devuelve todos los historiales no borrados.
func (uc *UseCase) List() ([]dto.MedicalRecordResponse, error) {
	recordsList, err := uc.recordRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicalRecordResponse, 0, len(recordsList))
	for _, r := range recordsList {
		out = append(out, toResponse(r))
	}
	return out, nil
}

// Update reemplaza las secciones presentes en el request; el recordId externo
// no se cambia nunca.
func (uc *UseCase) Update(id string, in dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Patient) > 0 {
		record.Patient = in.Patient
	}
	if len(in.Visit) > 0 {
		record.Visit = in.Visit
	}
	if len(in.MedicalHistory) > 0 {
		record.MedicalHistory = in.MedicalHistory
	}
	if len(in.VitalSigns) > 0 {
		record.VitalSigns = in.VitalSigns
	}
	if len(in.PhysicalExamination) > 0 {
		record.PhysicalExamination = in.PhysicalExamination
	}
	if len(in.Diagnosis) > 0 {
		record.Diagnosis = in.Diagnosis
	}
	if len(in.TreatmentPlan) > 0 {
		record.TreatmentPlan = in.TreatmentPlan
	}
	if in.Status != nil {
		if !validRecordStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		record.Status = *in.Status
	}
	record.UpdatedAt = time.Now()
	if err := uc.recordRepo.Update(record); err != nil {
		return nil, err
	}
	resp := toResponse(record)
	return &resp, nil
}

// Delete marca el historial como borrado (los historiales no se destruyen).
func (uc *UseCase) Delete(id string) error {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.recordRepo.SoftDelete(record.ID)
}

func validRecordStatus(s string) bool {
	return s == entity.RecordStatusCompleted || s == entity.RecordStatusDraft
}

func toResponse(r *entity.MedicalRecord) dto.MedicalRecordResponse {
	return dto.MedicalRecordResponse{
		ID:                  r.ID,
		RecordID:            r.RecordID,
		Patient:             r.Patient,
		Visit:               r.Visit,
		MedicalHistory:      r.MedicalHistory,
		VitalSigns:          r.VitalSigns,
		PhysicalExamination: r.PhysicalExamination,
		Diagnosis:           r.Diagnosis,
		TreatmentPlan:       r.TreatmentPlan,
		Status:              r.Status,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
