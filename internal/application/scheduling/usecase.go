package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para citas médicas.
type UseCase struct {
	apptRepo repository.AppointmentRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(apptRepo repository.AppointmentRepository) *UseCase {
	return &UseCase{apptRepo: apptRepo}
}

// Create agenda una cita.
func (uc *UseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PatientName == "" || in.PatientID == "" || in.DoctorName == "" || in.Date == "" || in.Time == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		PatientName: in.PatientName,
		PatientID:   in.PatientID,
		DoctorName:  in.DoctorName,
		DoctorRole:  in.DoctorRole,
		Date:        in.Date,
		Time:        in.Time,
		Room:        in.Room,
		Reason:      in.Reason,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.apptRepo.Create(appt); err != nil {
		return nil, err
	}
	resp := toResponse(appt)
	return &resp, nil
}

// GetByID devuelve una cita.
func (uc *UseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(appt)
	return &resp, nil
}

// List devuelve las citas, con filtros opcionales por paciente o fecha.
func (uc *UseCase) List(patientID, date string) ([]dto.AppointmentResponse, error) {
	var (
		appts []*entity.Appointment
		err   error
	)
	switch {
	case patientID != "":
		appts, err = uc.apptRepo.ListByPatient(patientID)
	case date != "":
		appts, err = uc.apptRepo.ListByDate(date)
	default:
		appts, err = uc.apptRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toResponse(a))
	}
	return out, nil
}

// Update aplica cambios parciales sobre una cita; campos nil no se tocan.
func (uc *UseCase) Update(id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if in.PatientName != nil {
		if *in.PatientName == "" {
			return nil, domain.ErrInvalidInput
		}
		appt.PatientName = *in.PatientName
	}
	if in.PatientID != nil {
		if *in.PatientID == "" {
			return nil, domain.ErrInvalidInput
		}
		appt.PatientID = *in.PatientID
	}
	if in.DoctorName != nil {
		if *in.DoctorName == "" {
			return nil, domain.ErrInvalidInput
		}
		appt.DoctorName = *in.DoctorName
	}
	if in.DoctorRole != nil {
		appt.DoctorRole = *in.DoctorRole
	}
	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return nil, domain.ErrInvalidInput
		}
		appt.Date = *in.Date
	}
	if in.Time != nil {
		if *in.Time == "" {
			return nil, domain.ErrInvalidInput
		}
		appt.Time = *in.Time
	}
	if in.Room != nil {
		appt.Room = *in.Room
	}
	if in.Reason != nil {
		appt.Reason = *in.Reason
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}
	appt.UpdatedAt = time.Now()
	if err := uc.apptRepo.Update(appt); err != nil {
		return nil, err
	}
	resp := toResponse(appt)
	return &resp, nil
}

// Delete elimina una cita.
func (uc *UseCase) Delete(id string) error {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	return uc.apptRepo.Delete(id)
}

func toResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          a.ID,
		PatientName: a.PatientName,
		PatientID:   a.PatientID,
		DoctorName:  a.DoctorName,
		DoctorRole:  a.DoctorRole,
		Date:        a.Date,
		Time:        a.Time,
		Room:        a.Room,
		Reason:      a.Reason,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
