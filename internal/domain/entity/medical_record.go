package entity

import (
	"encoding/json"
	"time"
)

// Estados de un historial médico.
const (
	RecordStatusCompleted = "Completed"
	RecordStatusDraft     = "Draft"
)

// MedicalRecord representa el historial médico de una visita.
// Las secciones clínicas se almacenan como documentos JSONB: son formularios
// de estructura variable que solo el frontend interpreta campo a campo.
type MedicalRecord struct {
	ID                  string
	RecordID            string // identificador externo, único
	Patient             json.RawMessage // nombre, id, género, fecha de nacimiento, contacto
	Visit               json.RawMessage // fecha de visita, doctor, motivo
	MedicalHistory      json.RawMessage // alergias, medicación actual, enfermedades crónicas
	VitalSigns          json.RawMessage // talla, peso, presión, pulso, temperatura, BMI
	PhysicalExamination json.RawMessage
	Diagnosis           json.RawMessage
	TreatmentPlan       json.RawMessage
	Status              string // Completed | Draft
	DeletedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
