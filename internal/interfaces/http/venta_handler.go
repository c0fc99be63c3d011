package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
)

// VentaHandler maneja las peticiones HTTP de ventas.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta con sus items
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaDTO  true  "Venta"
// @Success      201   {object}  dto.VentaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *VentaHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "venta no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar venta con el ID de la ruta (la crea si no existe)
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.VentaDTO  true  "Venta"
// @Success      200   {object}  dto.VentaDTO
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.VentaDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VentaHandler) GetByNombreCliente(c *fiber.Ctx) error {
	out, err := h.uc.GetByNombreCliente(c.UserContext(), c.Params("nombreCliente"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetEntreFechas godoc
// @Summary      Ventas entre dos fechas (incluidas)
// @Tags         ventas
// @Produce      json
// @Param        fechaInicio  query  string  true  "Inicio (2006-01-02T15:04:05 o RFC 3339)"
// @Param        fechaFin     query  string  true  "Fin (2006-01-02T15:04:05 o RFC 3339)"
// @Success      200  {array}  dto.VentaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/fechas [get]
func (h *VentaHandler) GetEntreFechas(c *fiber.Ctx) error {
	inicio, ok := parseFecha(c.Query("fechaInicio"))
	if !ok {
		return invalidParam(c, "fechaInicio")
	}
	fin, ok := parseFecha(c.Query("fechaFin"))
	if !ok {
		return invalidParam(c, "fechaFin")
	}
	out, err := h.uc.GetEntreFechas(c.UserContext(), inicio, fin)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMontoMayorQue godoc
// @Summary      Ventas con monto total estrictamente mayor
// @Tags         ventas
// @Produce      json
// @Param        monto  path  number  true  "Monto mínimo (excluido)"
// @Success      200  {array}  dto.VentaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/monto-mayor/{monto} [get]
func (h *VentaHandler) GetMontoMayorQue(c *fiber.Ctx) error {
	monto, err := decimal.NewFromString(c.Params("monto"))
	if err != nil {
		return invalidParam(c, "monto")
	}
	out, err := h.uc.GetMontoMayorQue(c.UserContext(), monto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *VentaHandler) GetByMetodoPago(c *fiber.Ctx) error {
	out, err := h.uc.GetByMetodoPago(c.UserContext(), c.Params("metodoPago"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Comprobante godoc
// @Summary      Comprobante PDF de la venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comprobante [get]
func (h *VentaHandler) Comprobante(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return invalidParam(c, "id")
	}
	pdf, filename, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// parseFecha acepta los mismos formatos que fechaVenta en el cuerpo JSON.
func parseFecha(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := dto.ParseFechaHora(s)
	return t, err == nil
}
