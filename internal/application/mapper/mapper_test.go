package mapper_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func productoDePrueba() *entity.Producto {
	return &entity.Producto{
		ID:           7,
		Nombre:       "Producto 1",
		Descripcion:  "Descripción 1",
		Precio:       decimal.RequireFromString("10.99"),
		Categoria:    "Categoría 1",
		CodigoBarras: "P001",
	}
}

func TestProductoMapper_IdaYVuelta(t *testing.T) {
	p := productoDePrueba()
	assert.Equal(t, p, mapper.ProductoToDomain(mapper.ProductoToDTO(p)))

	d := &dto.ProductoDTO{ID: 3, Nombre: "Leche", Precio: decimal.NewFromInt(2), CodigoBarras: "L01"}
	assert.Equal(t, d, mapper.ProductoToDTO(mapper.ProductoToDomain(d)))
}

func TestClienteMapper_IdaYVuelta(t *testing.T) {
	c := &entity.Cliente{ID: 1, Nombre: "Ana García", Email: "ana.garcia@example.com", Telefono: "555", Direccion: "Calle 1"}
	assert.Equal(t, c, mapper.ClienteToDomain(mapper.ClienteToDTO(c)))

	d := &dto.ClienteDTO{Nombre: "Pedro", Email: "pedro@example.com"}
	assert.Equal(t, d, mapper.ClienteToDTO(mapper.ClienteToDomain(d)))
}

func TestCajeroMapper_IdaYVuelta(t *testing.T) {
	c := entity.NewCajero("Luis", "CAJ001", entity.TurnoManana)
	c.ID = 9
	assert.Equal(t, c, mapper.CajeroToDomain(mapper.CajeroToDTO(c)))
}

func TestVentaMapper_IdaYVueltaConItems(t *testing.T) {
	v := &entity.Venta{
		ID:            4,
		FechaVenta:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		NombreCliente: "Juan Pérez",
		Items: []*entity.ItemVenta{
			{ID: 1, Producto: productoDePrueba(), Cantidad: 2, PrecioUnitario: decimal.RequireFromString("10.99"), Subtotal: decimal.RequireFromString("21.98")},
			{ID: 2, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(5)},
		},
		MontoTotal: decimal.RequireFromString("26.98"),
		MetodoPago: "Efectivo",
	}
	got := mapper.VentaToDomain(mapper.VentaToDTO(v))
	require.NotNil(t, got)
	assert.Equal(t, v, got)
	assert.Nil(t, got.Items[1].Producto, "un item sin producto debe seguir sin producto")
}

func TestMappers_NilDevuelveNil(t *testing.T) {
	assert.Nil(t, mapper.ProductoToDTO(nil))
	assert.Nil(t, mapper.ProductoToDomain(nil))
	assert.Nil(t, mapper.ClienteToDTO(nil))
	assert.Nil(t, mapper.ClienteToDomain(nil))
	assert.Nil(t, mapper.CajeroToDTO(nil))
	assert.Nil(t, mapper.CajeroToDomain(nil))
	assert.Nil(t, mapper.VentaToDTO(nil))
	assert.Nil(t, mapper.VentaToDomain(nil))
}

func TestMappers_ListaNilDevuelveListaVacia(t *testing.T) {
	productos := mapper.ProductosToDTO(nil)
	require.NotNil(t, productos)
	assert.Empty(t, productos)

	clientes := mapper.ClientesToDomain([]*dto.ClienteDTO{})
	require.NotNil(t, clientes)
	assert.Empty(t, clientes)

	assert.NotNil(t, mapper.CajerosToDTO(nil))
	assert.NotNil(t, mapper.VentasToDTO(nil))
}

func TestProductosToDTO_ElementoAElemento(t *testing.T) {
	a, b := productoDePrueba(), productoDePrueba()
	b.ID, b.CodigoBarras = 8, "P002"
	out := mapper.ProductosToDTO([]*entity.Producto{a, b})
	require.Len(t, out, 2)
	assert.Equal(t, "P001", out[0].CodigoBarras)
	assert.Equal(t, int64(8), out[1].ID)
}

func TestInventarioMapper_IdaYVuelta(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	inv := &entity.Inventario{
		ID: 2, Producto: productoDePrueba(), Cantidad: 20, StockMinimo: 5, StockMaximo: 50,
		FechaUltimaReposicion: &fecha, Ubicacion: "Pasillo 3",
	}
	d := mapper.InventarioToDTO(inv)
	require.NotNil(t, d.FechaUltimaReposicion)
	assert.Equal(t, "2024-03-15", d.FechaUltimaReposicion.Format(dto.LayoutFecha))
	assert.Equal(t, inv, mapper.InventarioToDomain(d))

	sinFecha := &entity.Inventario{ID: 3, Cantidad: 1}
	assert.Nil(t, mapper.InventarioToDTO(sinFecha).FechaUltimaReposicion)
	assert.Equal(t, sinFecha, mapper.InventarioToDomain(mapper.InventarioToDTO(sinFecha)))

	assert.Nil(t, mapper.InventarioToDTO(nil))
	assert.Nil(t, mapper.InventarioToDomain(nil))
	assert.NotNil(t, mapper.InventariosToDTO(nil))
}

func TestVentaMapper_ItemsNilEnAmbosSentidos(t *testing.T) {
	d := mapper.VentaToDTO(&entity.Venta{ID: 1})
	require.NotNil(t, d.Items, "items nil de la entidad salen como lista vacía")
	assert.Empty(t, d.Items)

	v := mapper.VentaToDomain(&dto.VentaDTO{ID: 1})
	require.NotNil(t, v.Items, "items ausentes en el DTO entran como lista vacía")
	assert.Empty(t, v.Items)

	conNil := &entity.Venta{Items: []*entity.ItemVenta{nil, {ID: 5, Cantidad: 1}}}
	out := mapper.VentaToDTO(conNil)
	require.Len(t, out.Items, 1, "las entradas nil se descartan")
	assert.Equal(t, int64(5), out.Items[0].ID)
}
