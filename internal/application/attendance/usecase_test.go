package attendance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clinica-api/internal/application/attendance"
	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
	"github.com/jhoicas/clinica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la cadena de resolución organización/red del check-in:
// id -> nombre -> objeto inline (creación) -> red de la organización.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAttendanceRepo struct {
	records map[string]*entity.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*entity.Attendance)}
}

func (r *fakeAttendanceRepo) Create(att *entity.Attendance) error { r.records[att.ID] = att; return nil }
func (r *fakeAttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	return r.records[id], nil
}
func (r *fakeAttendanceRepo) List() ([]*entity.Attendance, error) {
	var out []*entity.Attendance
	for _, att := range r.records {
		out = append(out, att)
	}
	return out, nil
}
func (r *fakeAttendanceRepo) ListByStaffAndDate(staffID, date string) ([]*entity.Attendance, error) {
	var out []*entity.Attendance
	for _, att := range r.records {
		if att.StaffID == staffID && att.Date == date {
			out = append(out, att)
		}
	}
	return out, nil
}
func (r *fakeAttendanceRepo) Update(att *entity.Attendance) error { r.records[att.ID] = att; return nil }
func (r *fakeAttendanceRepo) Delete(id string) error              { delete(r.records, id); return nil }

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func newFakeOrgRepo(orgs ...*entity.Organization) *fakeOrgRepo {
	r := &fakeOrgRepo{orgs: make(map[string]*entity.Organization)}
	for _, o := range orgs {
		r.orgs[o.ID] = o
	}
	return r
}

func (r *fakeOrgRepo) Create(org *entity.Organization) error { r.orgs[org.ID] = org; return nil }
func (r *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) { return r.orgs[id], nil }
func (r *fakeOrgRepo) GetByName(name string) (*entity.Organization, error) {
	for _, o := range r.orgs {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, nil
}
func (r *fakeOrgRepo) Any() (*entity.Organization, error) {
	for _, o := range r.orgs {
		return o, nil
	}
	return nil, nil
}
func (r *fakeOrgRepo) List() ([]*entity.Organization, error) {
	var out []*entity.Organization
	for _, o := range r.orgs {
		out = append(out, o)
	}
	return out, nil
}
func (r *fakeOrgRepo) Update(org *entity.Organization) error { r.orgs[org.ID] = org; return nil }
func (r *fakeOrgRepo) Delete(id string) error                { delete(r.orgs, id); return nil }

type fakeNetworkRepo struct {
	networks map[string]*entity.Network
}

func newFakeNetworkRepo(networks ...*entity.Network) *fakeNetworkRepo {
	r := &fakeNetworkRepo{networks: make(map[string]*entity.Network)}
	for _, n := range networks {
		r.networks[n.ID] = n
	}
	return r
}

func (r *fakeNetworkRepo) Create(n *entity.Network) error { r.networks[n.ID] = n; return nil }
func (r *fakeNetworkRepo) GetByID(id string) (*entity.Network, error) { return r.networks[id], nil }
func (r *fakeNetworkRepo) GetByNameOrIP(value string) (*entity.Network, error) {
	for _, n := range r.networks {
		if n.Name == value || n.IPAddress == value {
			return n, nil
		}
	}
	return nil, nil
}
func (r *fakeNetworkRepo) List() ([]*entity.Network, error) {
	var out []*entity.Network
	for _, n := range r.networks {
		out = append(out, n)
	}
	return out, nil
}
func (r *fakeNetworkRepo) Update(n *entity.Network) error { r.networks[n.ID] = n; return nil }
func (r *fakeNetworkRepo) Delete(id string) error         { delete(r.networks, id); return nil }

func testOrg() *entity.Organization {
	return &entity.Organization{ID: "org-1", Name: "Clínica Santa Fe", NetworkID: "net-org"}
}

func testNetwork(id, name, ip string) *entity.Network {
	return &entity.Network{ID: id, Name: name, IPAddress: ip}
}

func newTestUseCase(attRepo *fakeAttendanceRepo, orgRepo *fakeOrgRepo, netRepo *fakeNetworkRepo) *attendance.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return attendance.NewUseCase(attRepo, orgRepo, netRepo, log)
}

func baseRequest() dto.CreateAttendanceRequest {
	return dto.CreateAttendanceRequest{
		Name:    "Ana Pérez",
		StaffID: "staff-7",
		Date:    "2026-03-01",
	}
}

func TestCreate_ResuelveRedPorID(t *testing.T) {
	netRepo := newFakeNetworkRepo(testNetwork("net-1", "Recepción", "192.168.1.10"), testNetwork("net-org", "Principal", "10.0.0.1"))
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), netRepo)

	req := baseRequest()
	req.NetworkID = "net-1"

	resp, err := uc.Create(req)

	require.NoError(t, err)
	assert.Equal(t, "net-1", resp.NetworkID)
	assert.Equal(t, "Recepción", resp.NetworkName)
	assert.Equal(t, "org-1", resp.OrganizationID)
}

func TestCreate_ResuelveRedPorNombreOIP(t *testing.T) {
	netRepo := newFakeNetworkRepo(testNetwork("net-1", "Recepción", "192.168.1.10"))
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), netRepo)

	req := baseRequest()
	req.Network = &dto.NetworkInput{IPAddress: "192.168.1.10"}

	resp, err := uc.Create(req)

	require.NoError(t, err)
	assert.Equal(t, "net-1", resp.NetworkID)
}

func TestCreate_CreaRedInlineSiNoExiste(t *testing.T) {
	netRepo := newFakeNetworkRepo()
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), netRepo)

	req := baseRequest()
	req.Network = &dto.NetworkInput{Name: "Urgencias", IPAddress: "192.168.5.1"}

	resp, err := uc.Create(req)

	require.NoError(t, err)
	created, _ := netRepo.GetByNameOrIP("Urgencias")
	require.NotNil(t, created, "la red inline debe quedar persistida")
	assert.Equal(t, created.ID, resp.NetworkID)
}

func TestCreate_SinPistaDeRed_UsaLaRedDeLaOrganizacion(t *testing.T) {
	netRepo := newFakeNetworkRepo(testNetwork("net-org", "Principal", "10.0.0.1"))
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), netRepo)

	resp, err := uc.Create(baseRequest())

	require.NoError(t, err)
	assert.Equal(t, "net-org", resp.NetworkID)
}

func TestCreate_ResuelveOrganizacionPorNombre(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), newFakeNetworkRepo())

	req := baseRequest()
	req.Organization = "Clínica Santa Fe"

	resp, err := uc.Create(req)

	require.NoError(t, err)
	assert.Equal(t, "org-1", resp.OrganizationID)
	assert.Equal(t, "Clínica Santa Fe", resp.Organization)
}

func TestCreate_SinOrganizacionRegistrada(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(), newFakeNetworkRepo())

	_, err := uc.Create(baseRequest())

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreate_DefaultsStatusYApproval(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), newFakeNetworkRepo())

	resp, err := uc.Create(baseRequest())

	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceStatusPresent, resp.Status)
	assert.Equal(t, entity.ApprovalPending, resp.Approval)
}

func TestCreate_CamposObligatoriosYFecha(t *testing.T) {
	uc := newTestUseCase(newFakeAttendanceRepo(), newFakeOrgRepo(testOrg()), newFakeNetworkRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateAttendanceRequest)
	}{
		{"sin nombre", func(r *dto.CreateAttendanceRequest) { r.Name = "" }},
		{"sin staffId", func(r *dto.CreateAttendanceRequest) { r.StaffID = "" }},
		{"sin fecha", func(r *dto.CreateAttendanceRequest) { r.Date = "" }},
		{"fecha malformada", func(r *dto.CreateAttendanceRequest) { r.Date = "01-03-2026" }},
		{"status inválido", func(r *dto.CreateAttendanceRequest) { r.Status = "vacation" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(&req)
			_, err := uc.Create(req)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestUpdate_AprobacionYCheckOut(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	uc := newTestUseCase(attRepo, newFakeOrgRepo(testOrg()), newFakeNetworkRepo())

	created, err := uc.Create(baseRequest())
	require.NoError(t, err)

	approval := entity.ApprovalAccepted
	checkOut := "17:05"
	resp, err := uc.Update(created.ID, dto.UpdateAttendanceRequest{
		Approval:     &approval,
		CheckOutTime: &checkOut,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalAccepted, resp.Approval)
	assert.Equal(t, "17:05", resp.CheckOutTime)
}

func TestUpdate_AprobacionInvalida(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	uc := newTestUseCase(attRepo, newFakeOrgRepo(testOrg()), newFakeNetworkRepo())

	created, err := uc.Create(baseRequest())
	require.NoError(t, err)

	bad := "maybe"
	_, err = uc.Update(created.ID, dto.UpdateAttendanceRequest{Approval: &bad})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
