package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/application/pharmacy"
)

// MedicineGroupHandler maneja las peticiones HTTP para grupos de medicamentos.
type MedicineGroupHandler struct {
	uc *pharmacy.MedicineGroupUseCase
}

// NewMedicineGroupHandler construye el handler.
func NewMedicineGroupHandler(uc *pharmacy.MedicineGroupUseCase) *MedicineGroupHandler {
	return &MedicineGroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo de medicamentos
// @Tags         medicine-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicineGroupRequest  true  "Nombre del grupo"
// @Success      201   {object}  dto.MedicineGroupResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/medicine-groups [post]
func (h *MedicineGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicineGroupRequest
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
// @Summary      Obtener grupo por ID
// @Tags         medicine-groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.MedicineGroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicine-groups/{id} [get]
func (h *MedicineGroupHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar grupos de medicamentos
// @Tags         medicine-groups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MedicineGroupResponse
// @Router       /api/medicine-groups [get]
func (h *MedicineGroupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Renombrar grupo
// @Tags         medicine-groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del grupo"
// @Param        body  body  dto.CreateMedicineGroupRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.MedicineGroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicine-groups/{id} [put]
func (h *MedicineGroupHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.CreateMedicineGroupRequest
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
// @Summary      Eliminar grupo
// @Tags         medicine-groups
// @Security     Bearer
// @Param        id  path  string  true  "ID del grupo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicine-groups/{id} [delete]
func (h *MedicineGroupHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
