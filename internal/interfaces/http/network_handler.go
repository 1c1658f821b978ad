package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/clinic"
	"github.com/jhoicas/clinica-api/internal/application/dto"
	"github.com/jhoicas/clinica-api/internal/domain"
)

// NetworkHandler maneja las peticiones HTTP de redes autorizadas.
type NetworkHandler struct {
	uc *clinic.NetworkUseCase
}

// NewNetworkHandler construye el handler.
func NewNetworkHandler(uc *clinic.NetworkUseCase) *NetworkHandler {
	return &NetworkHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar red autorizada
// @Tags         networks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNetworkRequest  true  "Nombre e IP de la red"
// @Success      201   {object}  dto.NetworkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/networks [post]
func (h *NetworkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNetworkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la dirección IP ya está registrada"})
		}
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener red por ID
// @Tags         networks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la red"
// @Success      200  {object}  dto.NetworkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/networks/{id} [get]
func (h *NetworkHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar redes autorizadas
// @Tags         networks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NetworkResponse
// @Router       /api/networks [get]
func (h *NetworkHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar red
// @Tags         networks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la red"
// @Param        body  body  dto.CreateNetworkRequest  true  "Nuevo nombre/IP"
// @Success      200   {object}  dto.NetworkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/networks/{id} [put]
func (h *NetworkHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.CreateNetworkRequest
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
// @Summary      Eliminar red
// @Tags         networks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la red"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/networks/{id} [delete]
func (h *NetworkHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
