package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/attendance"
	"github.com/jhoicas/clinica-api/internal/application/dto"
)

// AttendanceHandler maneja las peticiones HTTP de asistencia del personal.
type AttendanceHandler struct {
	uc *attendance.UseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar asistencia
// @Description  Crea el registro de entrada validando organización y red; la
// @Description  red puede venir por id, por nombre/IP o como objeto a crear.
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAttendanceRequest  true  "Datos de asistencia"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de asistencia
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [get]
func (h *AttendanceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros de asistencia
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar asistencia
// @Description  Usado para el check-out y para aprobar/rechazar el registro.
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del registro"
// @Param        body  body  dto.UpdateAttendanceRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [put]
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de asistencia
// @Tags         attendance
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
