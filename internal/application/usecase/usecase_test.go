package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: los casos de uso corren sobre SQLite en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// stubReceipts registra la venta recibida y devuelve un PDF falso.
type stubReceipts struct {
	got *entity.Venta
	err error
}

func (s *stubReceipts) GenerateVentaPDF(_ context.Context, v *entity.Venta) ([]byte, error) {
	s.got = v
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

func TestUpdate_IDInexistenteDevuelveNotFound(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)

	productos := usecase.NewProductoUseCase(sqlite.NewProductoRepository(db))
	_, err := productos.Update(ctx, 99, &dto.ProductoDTO{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto")

	clientes := usecase.NewClienteUseCase(sqlite.NewClienteRepository(db))
	_, err = clientes.Update(ctx, 99, &dto.ClienteDTO{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente")

	cajeros := usecase.NewCajeroUseCase(sqlite.NewCajeroRepository(db))
	_, err = cajeros.Update(ctx, 99, &dto.CajeroDTO{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cajero")

	inventario := usecase.NewInventarioUseCase(sqlite.NewInventarioRepository(db))
	_, err = inventario.Update(ctx, 99, &entity.Inventario{Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "inventario")

	_, err = inventario.UpdateCantidad(ctx, 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound, "inventario cantidad")
}

func TestProductoUseCase_UpdateFuerzaIDDeRuta(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductoUseCase(sqlite.NewProductoRepository(newDB(t)))

	created, err := uc.Create(ctx, &dto.ProductoDTO{Nombre: "Leche", Precio: decimal.NewFromInt(1)})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, &dto.ProductoDTO{ID: 500, Nombre: "Leche deslactosada", Precio: decimal.NewFromInt(2)})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "el ID del cuerpo se ignora")

	all, err := uc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "no se crea un segundo producto")
	assert.Equal(t, "Leche deslactosada", all[0].Nombre)
}

func TestVentaUseCase_UpdateSinComprobarExistencia(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewVentaUseCase(sqlite.NewVentaRepository(newDB(t)), nil)

	out, err := uc.Update(ctx, 42, &dto.VentaDTO{
		FechaVenta: dto.FechaHora{Time: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}, NombreCliente: "Ana",
		MontoTotal: decimal.NewFromInt(10), MetodoPago: "Efectivo",
	})
	require.NoError(t, err, "a diferencia del resto, la venta no devuelve ErrNotFound")
	assert.Equal(t, int64(42), out.ID)

	got, err := uc.GetByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.NombreCliente)
}

func TestInventarioUseCase_UpdateCantidadSoloCambiaCantidad(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)
	prod, err := sqlite.NewProductoRepository(db).Save(ctx, entity.NewProducto("Sal", "", decimal.NewFromInt(1), "Despensa", "S1"))
	require.NoError(t, err)
	uc := usecase.NewInventarioUseCase(sqlite.NewInventarioRepository(db))

	fecha := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	inv, err := uc.Create(ctx, &entity.Inventario{
		Producto: prod, Cantidad: 10, StockMinimo: 2, StockMaximo: 30, FechaUltimaReposicion: &fecha, Ubicacion: "B1",
	})
	require.NoError(t, err)

	out, err := uc.UpdateCantidad(ctx, inv.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Cantidad)
	assert.Equal(t, 2, out.StockMinimo)
	assert.Equal(t, 30, out.StockMaximo)
	assert.Equal(t, "B1", out.Ubicacion)
	require.NotNil(t, out.Producto)
	assert.Equal(t, prod.ID, out.Producto.ID)
	require.NotNil(t, out.FechaUltimaReposicion)
	assert.True(t, fecha.Equal(*out.FechaUltimaReposicion))
}

func TestInventarioUseCase_ExportCSV(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)
	prod, err := sqlite.NewProductoRepository(db).Save(ctx, entity.NewProducto("Sal", "", decimal.NewFromInt(1), "Despensa", "S1"))
	require.NoError(t, err)
	uc := usecase.NewInventarioUseCase(sqlite.NewInventarioRepository(db))

	fecha := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Create(ctx, &entity.Inventario{Producto: prod, Cantidad: 10, StockMinimo: 2, StockMaximo: 30, FechaUltimaReposicion: &fecha, Ubicacion: "Pasillo, 1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &entity.Inventario{Cantidad: 0, Ubicacion: "Bodega"})
	require.NoError(t, err)

	data, err := uc.ExportCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err, "el export debe ser CSV válido")
	require.Len(t, records, 3)
	assert.Equal(t, usecase.CSVInventarioHeader, records[0])
	assert.Equal(t, []string{"1", "1", "10", "2", "30", "2024-02-01", "Pasillo, 1"}, records[1])
	assert.Equal(t, []string{"2", "", "0", "0", "0", "", "Bodega"}, records[2], "sin producto ni fecha las columnas quedan vacías")
}

func TestVentaUseCase_Receipt(t *testing.T) {
	ctx := context.Background()
	stub := &stubReceipts{}
	uc := usecase.NewVentaUseCase(sqlite.NewVentaRepository(newDB(t)), stub)

	_, _, err := uc.Receipt(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, stub.got, "sin venta no se genera PDF")

	v, err := uc.Create(ctx, &dto.VentaDTO{FechaVenta: dto.FechaHora{Time: time.Now()}, NombreCliente: "Ana", MontoTotal: decimal.NewFromInt(5)})
	require.NoError(t, err)

	pdf, filename, err := uc.Receipt(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "venta-1.pdf", filename)
	require.NotNil(t, stub.got)
	assert.Equal(t, "Ana", stub.got.NombreCliente)

	stub.err = errors.New("falló maroto")
	_, _, err = uc.Receipt(ctx, v.ID)
	assert.Error(t, err)
}

func TestClienteUseCase_SearchByNombre(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewClienteUseCase(sqlite.NewClienteRepository(newDB(t)))
	for _, n := range []string{"Ana García", "Ana Rodríguez", "Pedro Martínez"} {
		_, err := uc.Create(ctx, &dto.ClienteDTO{Nombre: n})
		require.NoError(t, err)
	}

	out, err := uc.SearchByNombre(ctx, "Ana")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ana García", out[0].Nombre)
	assert.Equal(t, "Ana Rodríguez", out[1].Nombre)

	none, err := uc.SearchByNombre(ctx, "Xyz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCajeroUseCase_TurnoYBorrado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCajeroUseCase(sqlite.NewCajeroRepository(newDB(t)))
	var last *dto.CajeroDTO
	for _, c := range []dto.CajeroDTO{
		{Nombre: "Juan", Codigo: "C1", Turno: entity.TurnoManana},
		{Nombre: "Sofía", Codigo: "C2", Turno: entity.TurnoManana},
		{Nombre: "Luis", Codigo: "C3", Turno: entity.TurnoNoche},
	} {
		c := c
		out, err := uc.Create(ctx, &c)
		require.NoError(t, err)
		last = out
	}

	manana, err := uc.GetByTurno(ctx, entity.TurnoManana)
	require.NoError(t, err)
	assert.Len(t, manana, 2)
	noche, err := uc.GetByTurno(ctx, entity.TurnoNoche)
	require.NoError(t, err)
	assert.Len(t, noche, 1)

	require.NoError(t, uc.Delete(ctx, last.ID))
	gone, err := uc.GetByID(ctx, last.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
