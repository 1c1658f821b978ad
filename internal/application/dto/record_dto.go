package dto

import (
	"encoding/json"
	"time"
)

// CreateMedicalRecordRequest body para POST /api/medical-records.
// Las secciones clínicas viajan como JSON opaco: el backend las persiste
// tal cual y solo valida las obligatorias.
type CreateMedicalRecordRequest struct {
	RecordID            string          `json:"recordId"`
	Patient             json.RawMessage `json:"patient"`
	Visit               json.RawMessage `json:"visit"`
	MedicalHistory      json.RawMessage `json:"medicalHistory,omitempty"`
	VitalSigns          json.RawMessage `json:"vitalSigns,omitempty"`
	PhysicalExamination json.RawMessage `json:"physicalExamination,omitempty"`
	Diagnosis           json.RawMessage `json:"diagnosis,omitempty"`
	TreatmentPlan       json.RawMessage `json:"treatmentPlan,omitempty"`
	Status              string          `json:"status,omitempty"`
}

// UpdateMedicalRecordRequest body para PUT /api/medical-records/:id.
type UpdateMedicalRecordRequest struct {
	Patient             json.RawMessage `json:"patient,omitempty"`
	Visit               json.RawMessage `json:"visit,omitempty"`
	MedicalHistory      json.RawMessage `json:"medicalHistory,omitempty"`
	VitalSigns          json.RawMessage `json:"vitalSigns,omitempty"`
	PhysicalExamination json.RawMessage `json:"physicalExamination,omitempty"`
	Diagnosis           json.RawMessage `json:"diagnosis,omitempty"`
	TreatmentPlan       json.RawMessage `json:"treatmentPlan,omitempty"`
	Status              *string         `json:"status,omitempty"`
}

// MedicalRecordResponse historial en respuestas.
type MedicalRecordResponse struct {
	ID                  string          `json:"id"`
	RecordID            string          `json:"recordId"`
	Patient             json.RawMessage `json:"patient"`
	Visit               json.RawMessage `json:"visit"`
	MedicalHistory      json.RawMessage `json:"medicalHistory,omitempty"`
	VitalSigns          json.RawMessage `json:"vitalSigns,omitempty"`
	PhysicalExamination json.RawMessage `json:"physicalExamination,omitempty"`
	Diagnosis           json.RawMessage `json:"diagnosis,omitempty"`
	TreatmentPlan       json.RawMessage `json:"treatmentPlan,omitempty"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
