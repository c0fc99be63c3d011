package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	ClienteUC    *usecase.ClienteUseCase
	CajeroUC     *usecase.CajeroUseCase
	InventarioUC *usecase.InventarioUseCase
	VentaUC      *usecase.VentaUseCase
}

// Router registra las rutas de la API. Las rutas fijas de cada grupo van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/categoria/:categoria", productoHandler.GetByCategoria)
	productos.Get("/precio/:min/:max", productoHandler.GetByRangoPrecio)
	productos.Get("/codigo-barras/:codigoBarras", productoHandler.GetByCodigoBarras)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.GetAll)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/email/:email", clienteHandler.GetByEmail)
	clientes.Get("/nombre/:nombre", clienteHandler.SearchByNombre)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.GetAll)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	cajeros := api.Group("/cajeros")
	cajeroHandler := NewCajeroHandler(deps.CajeroUC)
	cajeros.Get("/codigo/:codigo", cajeroHandler.GetByCodigo)
	cajeros.Get("/turno/:turno", cajeroHandler.GetByTurno)
	cajeros.Post("/", cajeroHandler.Create)
	cajeros.Get("/", cajeroHandler.GetAll)
	cajeros.Get("/:id", cajeroHandler.GetByID)
	cajeros.Put("/:id", cajeroHandler.Update)
	cajeros.Delete("/:id", cajeroHandler.Delete)

	inventario := api.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/producto/:productoId", inventarioHandler.GetByProducto)
	inventario.Get("/bajo-stock", inventarioHandler.GetBajoStock)
	inventario.Get("/ubicacion/:ubicacion", inventarioHandler.GetByUbicacion)
	inventario.Get("/csv", inventarioHandler.ExportCSV)
	inventario.Patch("/:id/cantidad/:cantidad", inventarioHandler.UpdateCantidad)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Get("/", inventarioHandler.GetAll)
	inventario.Get("/:id", inventarioHandler.GetByID)
	inventario.Put("/:id", inventarioHandler.Update)
	inventario.Delete("/:id", inventarioHandler.Delete)

	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Get("/cliente/:nombreCliente", ventaHandler.GetByNombreCliente)
	ventas.Get("/fechas", ventaHandler.GetEntreFechas)
	ventas.Get("/monto-mayor/:monto", ventaHandler.GetMontoMayorQue)
	ventas.Get("/metodo-pago/:metodoPago", ventaHandler.GetByMetodoPago)
	ventas.Get("/:id/comprobante", ventaHandler.Comprobante)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.GetAll)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", ventaHandler.Delete)
}
