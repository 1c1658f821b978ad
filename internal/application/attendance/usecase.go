package attendance

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/internal/domain/repository"
	"github.com/jhoicas/clinica-api/pkg/logger"
)

// UseCase casos de uso de asistencia del personal. El check-in por QR llega
// con la organización y la red en formatos variados (id, nombre, objeto
// inline); aquí se resuelven contra el registro maestro antes de persistir.
type UseCase struct {
	attendanceRepo repository.AttendanceRepository
	orgRepo        repository.OrganizationRepository
	networkRepo    repository.NetworkRepository
	log            *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	attendanceRepo repository.AttendanceRepository,
	orgRepo repository.OrganizationRepository,
	networkRepo repository.NetworkRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		attendanceRepo: attendanceRepo,
		orgRepo:        orgRepo,
		networkRepo:    networkRepo,
		log:            log,
	}
}

// Create registra un check-in. La organización se resuelve por id o nombre;
// la red por id, nombre/IP, objeto inline (se crea si no existe) o, en
// última instancia, la red asociada a la organización.
func (uc *UseCase) Create(in dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if in.Name == "" || in.StaffID == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.AttendanceStatusPresent
	}
	if !validStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	org, err := uc.resolveOrganization(in.OrganizationID, in.Organization)
	if err != nil {
		return nil, err
	}
	networkID, err := uc.resolveNetwork(in.NetworkID, in.Network, org)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	att := &entity.Attendance{
		ID:             uuid.New().String(),
		Profile:        in.Profile,
		Name:           in.Name,
		StaffID:        in.StaffID,
		Role:           in.Role,
		OrganizationID: org.ID,
		NetworkID:      networkID,
		Room:           in.Room,
		Shift:          in.Shift,
		CheckInTime:    in.CheckInTime,
		CheckOutTime:   in.CheckOutTime,
		Date:           in.Date,
		Status:         status,
		Approval:       entity.ApprovalPending,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.attendanceRepo.Create(att); err != nil {
		return nil, err
	}
	uc.log.Info().Str("staff_id", att.StaffID).Str("date", att.Date).Msg("asistencia registrada")
	return uc.toResponse(att), nil
}

// resolveOrganization resuelve por id, luego por nombre. Sin pista alguna,
// usa la única organización del sistema.
func (uc *UseCase) resolveOrganization(orgID, orgName string) (*entity.Organization, error) {
	if orgID != "" {
		org, err := uc.orgRepo.GetByID(orgID)
		if err != nil {
			return nil, err
		}
		if org != nil {
			return org, nil
		}
	}
	if orgName != "" {
		org, err := uc.orgRepo.GetByName(orgName)
		if err != nil {
			return nil, err
		}
		if org != nil {
			return org, nil
		}
	}
	org, err := uc.orgRepo.Any()
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return org, nil
}

// resolveNetwork cadena de resolución: id -> nombre/IP -> creación inline ->
// red de la organización.
func (uc *UseCase) resolveNetwork(networkID string, input *dto.NetworkInput, org *entity.Organization) (string, error) {
	if networkID != "" {
		network, err := uc.networkRepo.GetByID(networkID)
		if err != nil {
			return "", err
		}
		if network != nil {
			return network.ID, nil
		}
	}
	if input != nil {
		if input.ID != "" {
			network, err := uc.networkRepo.GetByID(input.ID)
			if err != nil {
				return "", err
			}
			if network != nil {
				return network.ID, nil
			}
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
		// No existe: si el objeto trae nombre e IP se crea sobre la marcha.
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
			uc.log.Info().Str("network", network.Name).Str("ip", network.IPAddress).Msg("red creada desde check-in")
			return network.ID, nil
		}
	}
	// Última instancia: la red de la organización.
	return org.NetworkID, nil
}

// GetByID devuelve un registro de asistencia.
func (uc *UseCase) GetByID(id string) (*dto.AttendanceResponse, error) {
	att, err := uc.attendanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(att), nil
}

// List devuelve todos los registros, más recientes primero.
func (uc *UseCase) List() ([]dto.AttendanceResponse, error) {
	records, err := uc.attendanceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, att := range records {
		out = append(out, *uc.toResponse(att))
	}
	return out, nil
}

// Update aplica cambios parciales sobre un registro; campos nil no se tocan.
func (uc *UseCase) Update(id string, in dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	att, err := uc.attendanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	if in.Profile != nil {
		att.Profile = *in.Profile
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		att.Name = *in.Name
	}
	if in.Role != nil {
		att.Role = *in.Role
	}
	if in.OrganizationID != nil || in.Organization != nil {
		orgID, orgName := "", ""
		if in.OrganizationID != nil {
			orgID = *in.OrganizationID
		}
		if in.Organization != nil {
			orgName = *in.Organization
		}
		org, err := uc.resolveOrganization(orgID, orgName)
		if err != nil {
			return nil, err
		}
		att.OrganizationID = org.ID
	}
	if in.NetworkID != nil || in.Network != nil {
		org, err := uc.orgRepo.GetByID(att.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound
		}
		networkID := ""
		if in.NetworkID != nil {
			networkID = *in.NetworkID
		}
		resolved, err := uc.resolveNetwork(networkID, in.Network, org)
		if err != nil {
			return nil, err
		}
		att.NetworkID = resolved
	}
	if in.Room != nil {
		att.Room = *in.Room
	}
	if in.Shift != nil {
		att.Shift = *in.Shift
	}
	if in.CheckInTime != nil {
		att.CheckInTime = *in.CheckInTime
	}
	if in.CheckOutTime != nil {
		att.CheckOutTime = *in.CheckOutTime
	}
	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return nil, domain.ErrInvalidInput
		}
		att.Date = *in.Date
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		att.Status = *in.Status
	}
	if in.Approval != nil {
		if !validApproval(*in.Approval) {
			return nil, domain.ErrInvalidInput
		}
		att.Approval = *in.Approval
	}
	if in.Notes != nil {
		att.Notes = *in.Notes
	}
	att.UpdatedAt = time.Now()
	if err := uc.attendanceRepo.Update(att); err != nil {
		return nil, err
	}
	return uc.toResponse(att), nil
}

// Delete elimina un registro de asistencia.
func (uc *UseCase) Delete(id string) error {
	att, err := uc.attendanceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if att == nil {
		return domain.ErrNotFound
	}
	return uc.attendanceRepo.Delete(id)
}

func validStatus(s string) bool {
	return s == entity.AttendanceStatusPresent || s == entity.AttendanceStatusAbsent || s == entity.AttendanceStatusLate
}

func validApproval(s string) bool {
	return s == entity.ApprovalPending || s == entity.ApprovalAccepted || s == entity.ApprovalRejected
}

// toResponse denormaliza los nombres de organización y red para el frontend.
func (uc *UseCase) toResponse(att *entity.Attendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:             att.ID,
		Profile:        att.Profile,
		Name:           att.Name,
		StaffID:        att.StaffID,
		Role:           att.Role,
		OrganizationID: att.OrganizationID,
		NetworkID:      att.NetworkID,
		Room:           att.Room,
		Shift:          att.Shift,
		CheckInTime:    att.CheckInTime,
		CheckOutTime:   att.CheckOutTime,
		Date:           att.Date,
		Status:         att.Status,
		Approval:       att.Approval,
		Notes:          att.Notes,
		CreatedAt:      att.CreatedAt,
		UpdatedAt:      att.UpdatedAt,
	}
	if att.OrganizationID != "" {
		if org, err := uc.orgRepo.GetByID(att.OrganizationID); err == nil && org != nil {
			resp.Organization = org.Name
		}
	}
	if att.NetworkID != "" {
		if network, err := uc.networkRepo.GetByID(att.NetworkID); err == nil && network != nil {
			resp.NetworkName = network.Name
		}
	}
	return resp
}
