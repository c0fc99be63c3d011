package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoDTO  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoDTO
// @Router       /api/productos [get]
func (h *ProductoHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductoDTO  true  "Datos del producto"
// @Success      200   {object}  dto.ProductoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.ProductoDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByCategoria godoc
// @Summary      Productos de una categoría
// @Tags         productos
// @Produce      json
// @Param        categoria  path  string  true  "Categoría"
// @Success      200  {array}  dto.ProductoDTO
// @Router       /api/productos/categoria/{categoria} [get]
func (h *ProductoHandler) GetByCategoria(c *fiber.Ctx) error {
	out, err := h.uc.GetByCategoria(c.UserContext(), c.Params("categoria"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByRangoPrecio godoc
// @Summary      Productos con precio entre min y max (incluidos)
// @Tags         productos
// @Produce      json
// @Param        min  path  number  true  "Precio mínimo"
// @Param        max  path  number  true  "Precio máximo"
// @Success      200  {array}  dto.ProductoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/precio/{min}/{max} [get]
func (h *ProductoHandler) GetByRangoPrecio(c *fiber.Ctx) error {
	minPrecio, err := decimal.NewFromString(c.Params("min"))
	if err != nil {
		return invalidParam(c, "min")
	}
	maxPrecio, err := decimal.NewFromString(c.Params("max"))
	if err != nil {
		return invalidParam(c, "max")
	}
	out, err := h.uc.GetByRangoPrecio(c.UserContext(), minPrecio, maxPrecio)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByCodigoBarras godoc
// @Summary      Producto por código de barras
// @Tags         productos
// @Produce      json
// @Param        codigoBarras  path  string  true  "Código de barras"
// @Success      200  {object}  dto.ProductoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/codigo-barras/{codigoBarras} [get]
func (h *ProductoHandler) GetByCodigoBarras(c *fiber.Ctx) error {
	out, err := h.uc.GetByCodigoBarras(c.UserContext(), c.Params("codigoBarras"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}
