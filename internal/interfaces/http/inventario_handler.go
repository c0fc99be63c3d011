package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
)

// InventarioHandler maneja las peticiones HTTP de inventario. El caso de uso trabaja con
// entidades; la conversión a dto.InventarioDTO se hace aquí.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventarioDTO  true  "Registro"
// @Success      201   {object}  dto.InventarioDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.InventarioDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), mapper.InventarioToDomain(&in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mapper.InventarioToDTO(out))
}

func (h *InventarioHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mapper.InventariosToDTO(out))
}

func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario no encontrado")
	}
	return c.JSON(mapper.InventarioToDTO(out))
}

// Update godoc
// @Summary      Reemplazar registro de inventario
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.InventarioDTO  true  "Registro"
// @Success      200   {object}  dto.InventarioDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [put]
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.InventarioDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, mapper.InventarioToDomain(&in))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mapper.InventarioToDTO(out))
}

func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateCantidad godoc
// @Summary      Cambiar solo la cantidad
// @Tags         inventario
// @Produce      json
// @Param        id        path  int  true  "ID del registro"
// @Param        cantidad  path  int  true  "Nueva cantidad"
// @Success      200  {object}  dto.InventarioDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/cantidad/{cantidad} [patch]
func (h *InventarioHandler) UpdateCantidad(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	cantidad, err := strconv.Atoi(c.Params("cantidad"))
	if err != nil {
		return invalidParam(c, "cantidad")
	}
	out, err := h.uc.UpdateCantidad(c.UserContext(), id, cantidad)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mapper.InventarioToDTO(out))
}

// GetByProducto godoc
// @Summary      Inventario de un producto
// @Tags         inventario
// @Produce      json
// @Param        productoId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.InventarioDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/producto/{productoId} [get]
func (h *InventarioHandler) GetByProducto(c *fiber.Ctx) error {
	productoID, err := paramInt64(c, "productoId")
	if err != nil {
		return invalidParam(c, "productoId")
	}
	out, err := h.uc.GetByProducto(c.UserContext(), productoID)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario no encontrado para el producto")
	}
	return c.JSON(mapper.InventarioToDTO(out))
}

// GetBajoStock godoc
// @Summary      Registros con cantidad <= stock mínimo
// @Tags         inventario
// @Produce      json
// @Success      200  {array}  dto.InventarioDTO
// @Router       /api/inventario/bajo-stock [get]
func (h *InventarioHandler) GetBajoStock(c *fiber.Ctx) error {
	out, err := h.uc.GetBajoStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mapper.InventariosToDTO(out))
}

func (h *InventarioHandler) GetByUbicacion(c *fiber.Ctx) error {
	out, err := h.uc.GetByUbicacion(c.UserContext(), c.Params("ubicacion"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mapper.InventariosToDTO(out))
}

// ExportCSV godoc
// @Summary      Exportar inventario en CSV
// @Tags         inventario
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/inventario/csv [get]
func (h *InventarioHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment("inventario.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}
