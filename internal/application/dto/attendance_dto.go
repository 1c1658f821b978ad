package dto

import "time"

// NetworkInput red embebida en requests de asistencia/organización: puede
// venir como id, como nombre/IP de una red existente, o como objeto
// {name, ipAddress} para crearla sobre la marcha.
type NetworkInput struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
}

// CreateAttendanceRequest body para POST /api/attendance.
type CreateAttendanceRequest struct {
	Profile        string        `json:"profile,omitempty"`
	Name           string        `json:"name"`
	StaffID        string        `json:"staffId"`
	Role           string        `json:"role,omitempty"`
	OrganizationID string        `json:"organizationId,omitempty"`
	Organization   string        `json:"organization,omitempty"` // nombre; se resuelve a id
	NetworkID      string        `json:"networkId,omitempty"`
	Network        *NetworkInput `json:"network,omitempty"`
	Room           string        `json:"room,omitempty"`
	Shift          string        `json:"shift,omitempty"`
	CheckInTime    string        `json:"checkInTime,omitempty"`
	CheckOutTime   string        `json:"checkOutTime,omitempty"`
	Date           string        `json:"date"`
	Status         string        `json:"status,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

// UpdateAttendanceRequest body para PUT /api/attendance/:id.
type UpdateAttendanceRequest struct {
	Profile        *string       `json:"profile,omitempty"`
	Name           *string       `json:"name,omitempty"`
	Role           *string       `json:"role,omitempty"`
	OrganizationID *string       `json:"organizationId,omitempty"`
	Organization   *string       `json:"organization,omitempty"`
	NetworkID      *string       `json:"networkId,omitempty"`
	Network        *NetworkInput `json:"network,omitempty"`
	Room           *string       `json:"room,omitempty"`
	Shift          *string       `json:"shift,omitempty"`
	CheckInTime    *string       `json:"checkInTime,omitempty"`
	CheckOutTime   *string       `json:"checkOutTime,omitempty"`
	Date           *string       `json:"date,omitempty"`
	Status         *string       `json:"status,omitempty"`
	Approval       *string       `json:"approval,omitempty"`
	Notes          *string       `json:"notes,omitempty"`
}

// AttendanceResponse registro de asistencia en respuestas, con la
// organización y la red ya resueltas.
type AttendanceResponse struct {
	ID               string    `json:"id"`
	Profile          string    `json:"profile,omitempty"`
	Name             string    `json:"name"`
	StaffID          string    `json:"staffId"`
	Role             string    `json:"role,omitempty"`
	Organization     string    `json:"organization,omitempty"` // nombre denormalizado
	OrganizationID   string    `json:"organizationId,omitempty"`
	NetworkID        string    `json:"networkId,omitempty"`
	NetworkName      string    `json:"networkName,omitempty"`
	Room             string    `json:"room,omitempty"`
	Shift            string    `json:"shift,omitempty"`
	CheckInTime      string    `json:"checkInTime,omitempty"`
	CheckOutTime     string    `json:"checkOutTime,omitempty"`
	Date             string    `json:"date"`
	Status           string    `json:"status"`
	Approval         string    `json:"approval"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateOrganizationRequest body para POST /api/organizations.
type CreateOrganizationRequest struct {
	Name       string        `json:"name"`
	Type       string        `json:"type,omitempty"`
	RecordType string        `json:"recordType,omitempty"`
	Network    *NetworkInput `json:"network,omitempty"`
	Logo       string        `json:"logo,omitempty"`
}

// UpdateOrganizationRequest body para PUT /api/organizations/:id.
type UpdateOrganizationRequest struct {
	Name       *string       `json:"name,omitempty"`
	Type       *string       `json:"type,omitempty"`
	RecordType *string       `json:"recordType,omitempty"`
	Network    *NetworkInput `json:"network,omitempty"`
	Logo       *string       `json:"logo,omitempty"`
}

// OrganizationResponse organización en respuestas.
type OrganizationResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type,omitempty"`
	RecordType string    `json:"recordType,omitempty"`
	NetworkID  string    `json:"network,omitempty"`
	Logo       string    `json:"logo,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateNetworkRequest body para POST /api/networks.
type CreateNetworkRequest struct {
	Name      string `json:"name"`
	IPAddress string `json:"ipAddress"`
}

// NetworkResponse red en respuestas.
type NetworkResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IPAddress string    `json:"ipAddress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
