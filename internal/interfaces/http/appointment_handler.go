package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/application/scheduling"
)

// AppointmentHandler maneja las peticiones HTTP de citas médicas.
type AppointmentHandler struct {
	uc *scheduling.UseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *scheduling.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "Datos de la cita"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
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
// @Summary      Obtener cita por ID
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar citas
// @Description  Filtrable por paciente (patientId) o por día (date yyyy-mm-dd).
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        patientId  query  string  false  "Documento del paciente"
// @Param        date       query  string  false  "Fecha yyyy-mm-dd"
// @Success      200  {array}  dto.AppointmentResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("patientId"), c.Query("date"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Reprogramar o modificar cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateAppointmentRequest
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
// @Summary      Cancelar cita
// @Tags         appointments
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
