package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/application/records"
	"github.com/jhoicas/clinica-api/internal/domain"
)

// MedicalRecordHandler maneja las peticiones HTTP de historiales clínicos.
type MedicalRecordHandler struct {
	uc *records.UseCase
}

// NewMedicalRecordHandler construye el handler.
func NewMedicalRecordHandler(uc *records.UseCase) *MedicalRecordHandler {
	return &MedicalRecordHandler{uc: uc}
}

// Create godoc
// @Summary      Crear historial clínico
// @Description  Las secciones clínicas se persisten como JSON opaco; solo
// @Description  recordId, patient y visit son obligatorios.
// @Tags         medical-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicalRecordRequest  true  "Historial"
// @Success      201   {object}  dto.MedicalRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/medical-records [post]
func (h *MedicalRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicalRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recordId ya existe"})
		}
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener historial clínico
// @Description  Acepta tanto el id interno como el recordId visible.
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID o recordId"
// @Success      200  {object}  dto.MedicalRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [get]
func (h *MedicalRecordHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar historiales clínicos
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MedicalRecordResponse
// @Router       /api/medical-records [get]
func (h *MedicalRecordHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar historial clínico
// @Tags         medical-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID o recordId"
// @Param        body  body  dto.UpdateMedicalRecordRequest  true  "Secciones a reemplazar"
// @Success      200   {object}  dto.MedicalRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateMedicalRecordRequest
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
// @Summary      Eliminar historial clínico (soft delete)
// @Tags         medical-records
// @Security     Bearer
// @Param        id  path  string  true  "ID o recordId"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
