package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func saveProducto(t *testing.T, repo *sqlite.ProductoRepo, nombre, precio, categoria, codigo string) *entity.Producto {
	t.Helper()
	p, err := repo.Save(context.Background(),
		entity.NewProducto(nombre, "", decimal.RequireFromString(precio), categoria, codigo))
	require.NoError(t, err)
	require.NotZero(t, p.ID, "Save debe asignar ID")
	return p
}

func TestProductoRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductoRepository(newTestDB(t))

	missing, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing, "un ID inexistente devuelve nil sin error")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	leche := saveProducto(t, repo, "Leche", "1.20", "Lácteos", "P001")

	found, err := repo.FindByCodigoBarras(ctx, "P001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, leche.ID, found.ID)
	assert.Equal(t, "Leche", found.Nombre)
	assert.True(t, decimal.RequireFromString("1.20").Equal(found.Precio))

	none, err := repo.FindByCodigoBarras(ctx, "P999")
	require.NoError(t, err)
	assert.Nil(t, none)

	leche.Nombre = "Leche entera"
	_, err = repo.Save(ctx, leche)
	require.NoError(t, err)
	reloaded, err := repo.FindByID(ctx, leche.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", reloaded.Nombre)

	require.NoError(t, repo.DeleteByID(ctx, leche.ID))
	gone, err := repo.FindByID(ctx, leche.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProductoRepo_SaveWithUnknownIDInserts(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductoRepository(newTestDB(t))

	p := entity.NewProducto("Pan", "", decimal.NewFromInt(2), "Panadería", "")
	p.ID = 42
	_, err := repo.Save(ctx, p)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Pan", found.Nombre)
}

func TestProductoRepo_EmptyBarcodesDoNotCollide(t *testing.T) {
	repo := sqlite.NewProductoRepository(newTestDB(t))
	saveProducto(t, repo, "A", "1", "X", "")
	saveProducto(t, repo, "B", "1", "X", "")

	_, err := repo.Save(context.Background(),
		entity.NewProducto("C", "", decimal.NewFromInt(1), "X", "DUP"))
	require.NoError(t, err)
	_, err = repo.Save(context.Background(),
		entity.NewProducto("D", "", decimal.NewFromInt(1), "X", "DUP"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el código de barras repetido debe fallar")
}

func TestProductoRepo_Finders(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductoRepository(newTestDB(t))
	saveProducto(t, repo, "Arroz", "5", "Granos", "A1")
	saveProducto(t, repo, "Frijol", "10", "Granos", "A2")
	saveProducto(t, repo, "Queso", "15.50", "Lácteos", "A3")

	granos, err := repo.FindByCategoria(ctx, "Granos")
	require.NoError(t, err)
	assert.Len(t, granos, 2)

	rango, err := repo.FindByPrecioBetween(ctx, decimal.NewFromInt(5), decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Len(t, rango, 2, "los extremos del rango se incluyen")
	assert.Equal(t, "Arroz", rango[0].Nombre)
	assert.Equal(t, "Frijol", rango[1].Nombre)
}

func TestClienteRepo_Finders(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewClienteRepository(newTestDB(t))

	for _, c := range []*entity.Cliente{
		entity.NewCliente("Ana Pérez", "ana@x.com", "", ""),
		entity.NewCliente("Mariana Gómez", "mariana@x.com", "", ""),
		entity.NewCliente("Luis", "luis@x.com", "", ""),
	} {
		_, err := repo.Save(ctx, c)
		require.NoError(t, err)
	}

	ana, err := repo.FindByNombreContaining(ctx, "Ana")
	require.NoError(t, err)
	require.Len(t, ana, 1, "la búsqueda distingue mayúsculas")
	assert.Equal(t, "Ana Pérez", ana[0].Nombre)

	ana2, err := repo.FindByNombreContaining(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, ana2, 1)
	assert.Equal(t, "Mariana Gómez", ana2[0].Nombre)

	none, err := repo.FindByNombreContaining(ctx, "Xyz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	luis, err := repo.FindByEmail(ctx, "luis@x.com")
	require.NoError(t, err)
	require.NotNil(t, luis)
	assert.Equal(t, "Luis", luis.Nombre)
}

func TestCajeroRepo_TurnoAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCajeroRepository(newTestDB(t))

	c1, err := repo.Save(ctx, entity.NewCajero("Juan", "C001", entity.TurnoManana))
	require.NoError(t, err)
	_, err = repo.Save(ctx, entity.NewCajero("Sofía", "C002", entity.TurnoManana))
	require.NoError(t, err)

	manana, err := repo.FindByTurno(ctx, entity.TurnoManana)
	require.NoError(t, err)
	assert.Len(t, manana, 2)

	noche, err := repo.FindByTurno(ctx, entity.TurnoNoche)
	require.NoError(t, err)
	assert.Empty(t, noche)

	byCodigo, err := repo.FindByCodigo(ctx, "C001")
	require.NoError(t, err)
	require.NotNil(t, byCodigo)
	assert.Equal(t, c1.ID, byCodigo.ID)

	require.NoError(t, repo.DeleteByID(ctx, c1.ID))
	gone, err := repo.FindByID(ctx, c1.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.DeleteByID(ctx, 12345), "borrar un ID inexistente no falla")
}

func TestInventarioRepo_BajoStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productos := sqlite.NewProductoRepository(db)
	repo := sqlite.NewInventarioRepository(db)

	p := saveProducto(t, productos, "Azúcar", "3", "Granos", "Z1")
	for _, cantidad := range []int{3, 4, 5, 10} {
		_, err := repo.Save(ctx, &entity.Inventario{
			Producto: p, Cantidad: cantidad, StockMinimo: 5, StockMaximo: 50, Ubicacion: "Pasillo 1",
		})
		require.NoError(t, err)
	}

	bajo, err := repo.FindBajoStock(ctx)
	require.NoError(t, err)
	require.Len(t, bajo, 3)
	for _, inv := range bajo {
		assert.LessOrEqual(t, inv.Cantidad, 5)
		require.NotNil(t, inv.Producto, "el producto se resuelve en la lectura")
		assert.Equal(t, "Azúcar", inv.Producto.Nombre)
	}
}

func TestInventarioRepo_ProductoAndUbicacion(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productos := sqlite.NewProductoRepository(db)
	repo := sqlite.NewInventarioRepository(db)

	p := saveProducto(t, productos, "Aceite", "8", "Despensa", "AC1")
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	saved, err := repo.Save(ctx, &entity.Inventario{
		Producto: p, Cantidad: 20, StockMinimo: 5, StockMaximo: 40,
		FechaUltimaReposicion: &fecha, Ubicacion: "Bodega",
	})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &entity.Inventario{Cantidad: 1, Ubicacion: "Bodega"})
	require.NoError(t, err)

	byProducto, err := repo.FindByProducto(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, byProducto)
	assert.Equal(t, saved.ID, byProducto.ID)
	require.NotNil(t, byProducto.FechaUltimaReposicion)
	assert.True(t, fecha.Equal(*byProducto.FechaUltimaReposicion))

	sinRegistro, err := repo.FindByProducto(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, sinRegistro)

	bodega, err := repo.FindByUbicacion(ctx, "Bodega")
	require.NoError(t, err)
	require.Len(t, bodega, 2)
	assert.Nil(t, bodega[1].Producto)
	assert.Nil(t, bodega[1].FechaUltimaReposicion)
}

func TestVentaRepo_SaveWithItems(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productos := sqlite.NewProductoRepository(db)
	repo := sqlite.NewVentaRepository(db)

	leche := saveProducto(t, productos, "Leche", "1.50", "Lácteos", "L1")
	pan := saveProducto(t, productos, "Pan", "0.80", "Panadería", "P1")

	venta := &entity.Venta{
		FechaVenta:    time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		NombreCliente: "Ana",
		MontoTotal:    decimal.RequireFromString("4.60"),
		MetodoPago:    "Efectivo",
		Items: []*entity.ItemVenta{
			entity.NewItemVenta(leche, 2, leche.Precio),
			entity.NewItemVenta(pan, 2, pan.Precio),
		},
	}
	saved, err := repo.Save(ctx, venta)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, "Leche", saved.Items[0].Producto.Nombre)
	assert.True(t, decimal.RequireFromString("3.00").Equal(saved.Items[0].Subtotal))
	assert.True(t, venta.FechaVenta.Equal(saved.FechaVenta))

	// reemplazar la colección de items
	saved.Items = saved.Items[:1]
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	gone, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestVentaRepo_Finders(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewVentaRepository(newTestDB(t))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, monto := range []string{"50", "100", "150"} {
		_, err := repo.Save(ctx, &entity.Venta{
			FechaVenta:    base.AddDate(0, 0, i*10),
			NombreCliente: "Cliente",
			MontoTotal:    decimal.RequireFromString(monto),
			MetodoPago:    []string{"Efectivo", "Tarjeta", "Efectivo"}[i],
		})
		require.NoError(t, err)
	}

	entre, err := repo.FindByFechaVentaBetween(ctx, base, base.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Len(t, entre, 2, "ambas fechas límite se incluyen")

	mayor, err := repo.FindByMontoTotalGreaterThan(ctx, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, mayor, 1, "el monto igual al umbral queda fuera")
	assert.True(t, decimal.NewFromInt(150).Equal(mayor[0].MontoTotal))

	efectivo, err := repo.FindByMetodoPago(ctx, "Efectivo")
	require.NoError(t, err)
	assert.Len(t, efectivo, 2)

	porCliente, err := repo.FindByNombreCliente(ctx, "Cliente")
	require.NoError(t, err)
	assert.Len(t, porCliente, 3)
	for _, v := range porCliente {
		assert.NotNil(t, v.Items)
		assert.Empty(t, v.Items)
	}
}

func TestVentaRepo_SaveWithExplicitIDCreates(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewVentaRepository(newTestDB(t))

	saved, err := repo.Save(ctx, &entity.Venta{
		ID: 77, FechaVenta: time.Now(), NombreCliente: "X", MontoTotal: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(77), saved.ID)
}

func TestProductoRepo_PrecioSeGuardaExacto(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductoRepository(newTestDB(t))

	grande := saveProducto(t, repo, "Lote", "1234567890123.4567", "Mayorista", "G1")
	got, err := repo.FindByID(ctx, grande.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890123.4567", got.Precio.String(), "más de 15 dígitos sin redondeo")

	conCero := saveProducto(t, repo, "Queso", "10.50", "Lácteos", "Q1")
	got, err = repo.FindByID(ctx, conCero.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), got.Precio.Exponent(), "se conserva la escala")
	assert.Equal(t, "10.50", got.Precio.StringFixed(2))

	saveProducto(t, repo, "Arroz", "9.50", "Granos", "A1")
	saveProducto(t, repo, "Aceite", "100", "Despensa", "AC1")
	rango, err := repo.FindByPrecioBetween(ctx, decimal.NewFromInt(5), decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	require.Len(t, rango, 2, "la comparación es numérica, no de texto")
	assert.Equal(t, "Queso", rango[0].Nombre)
	assert.Equal(t, "Arroz", rango[1].Nombre)
}

func TestVentaRepo_ImportesExactos(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewVentaRepository(newTestDB(t))

	saved, err := repo.Save(ctx, &entity.Venta{
		FechaVenta: time.Now(), NombreCliente: "Mayorista",
		MontoTotal: decimal.RequireFromString("9876543210987.6543"),
		Items: []*entity.ItemVenta{{
			Cantidad:       3,
			PrecioUnitario: decimal.RequireFromString("3292181070329.2181"),
			Subtotal:       decimal.RequireFromString("9876543210987.6543"),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "9876543210987.6543", saved.MontoTotal.String())
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "3292181070329.2181", saved.Items[0].PrecioUnitario.String())
	assert.Equal(t, "9876543210987.6543", saved.Items[0].Subtotal.String())

	mayor, err := repo.FindByMontoTotalGreaterThan(ctx, decimal.RequireFromString("999"))
	require.NoError(t, err)
	assert.Len(t, mayor, 1)
}

func TestVentaRepo_ItemIDsDeOtraVentaSeIgnoran(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewVentaRepository(newTestDB(t))

	nuevaVenta := func(cliente string) *entity.Venta {
		v, err := repo.Save(ctx, &entity.Venta{
			FechaVenta: time.Now(), NombreCliente: cliente, MontoTotal: decimal.NewFromInt(1),
			Items: []*entity.ItemVenta{{Cantidad: 1, PrecioUnitario: decimal.NewFromInt(1), Subtotal: decimal.NewFromInt(1)}},
		})
		require.NoError(t, err)
		require.Len(t, v.Items, 1)
		return v
	}
	a := nuevaVenta("A")
	b := nuevaVenta("B")
	ajeno := a.Items[0].ID
	propio := b.Items[0].ID

	b.Items = []*entity.ItemVenta{
		{ID: propio, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(1), Subtotal: decimal.NewFromInt(2)},
		{ID: ajeno, Cantidad: 5, PrecioUnitario: decimal.NewFromInt(1), Subtotal: decimal.NewFromInt(5)},
	}
	updated, err := repo.Save(ctx, b)
	require.NoError(t, err, "un ID de item ajeno no provoca conflicto de clave")
	require.Len(t, updated.Items, 2)
	assert.Equal(t, propio, updated.Items[0].ID, "el item propio conserva su ID")
	assert.NotEqual(t, ajeno, updated.Items[1].ID, "el ID ajeno se reemplaza")
	assert.Equal(t, 5, updated.Items[1].Cantidad)

	intacta, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, intacta.Items, 1)
	assert.Equal(t, ajeno, intacta.Items[0].ID)
	assert.Equal(t, 1, intacta.Items[0].Cantidad, "la otra venta no cambia")
}
