package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
)

// CajeroHandler maneja las peticiones HTTP de cajeros.
type CajeroHandler struct {
	uc *usecase.CajeroUseCase
}

func NewCajeroHandler(uc *usecase.CajeroUseCase) *CajeroHandler {
	return &CajeroHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cajero
// @Tags         cajeros
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CajeroDTO  true  "Datos del cajero"
// @Success      201   {object}  dto.CajeroDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cajeros [post]
func (h *CajeroHandler) Create(c *fiber.Ctx) error {
	var in dto.CajeroDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CajeroHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CajeroHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cajero no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cajero
// @Tags         cajeros
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cajero"
// @Param        body  body  dto.CajeroDTO  true  "Datos del cajero"
// @Success      200   {object}  dto.CajeroDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cajeros/{id} [put]
func (h *CajeroHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.CajeroDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *CajeroHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByCodigo godoc
// @Summary      Cajero por código
// @Tags         cajeros
// @Produce      json
// @Param        codigo  path  string  true  "Código del cajero"
// @Success      200  {object}  dto.CajeroDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cajeros/codigo/{codigo} [get]
func (h *CajeroHandler) GetByCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigo(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cajero no encontrado")
	}
	return c.JSON(out)
}

// GetByTurno godoc
// @Summary      Cajeros de un turno
// @Tags         cajeros
// @Produce      json
// @Param        turno  path  string  true  "Turno (Mañana, Tarde, Noche)"
// @Success      200  {array}  dto.CajeroDTO
// @Router       /api/cajeros/turno/{turno} [get]
func (h *CajeroHandler) GetByTurno(c *fiber.Ctx) error {
	out, err := h.uc.GetByTurno(c.UserContext(), c.Params("turno"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
