package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/supermercado-api/pkg/config"
)

// newTestPool conecta a TEST_DATABASE_URL; sin esa variable los tests se omiten.
// Cada test trabaja sobre tablas vacías.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omiten los tests de PostgreSQL")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4, AutoMigrate: true})
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE items_venta, ventas, inventario, cajeros, clientes, productos RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestProductoRepo_Postgres(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewProductoRepository(newTestPool(t))

	p, err := repo.Save(ctx, entity.NewProducto("Leche", "", decimal.RequireFromString("1.20"), "Lácteos", "P001"))
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	found, err := repo.FindByCodigoBarras(ctx, "P001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, decimal.RequireFromString("1.20").Equal(found.Precio))

	none, err := repo.FindByCodigoBarras(ctx, "P999")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = repo.Save(ctx, entity.NewProducto("Otra", "", decimal.Zero, "Lácteos", "P001"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// id explícito y luego uno asignado por la secuencia: no deben chocar
	explicit := entity.NewProducto("Pan", "", decimal.NewFromInt(1), "Panadería", "")
	explicit.ID = 50
	_, err = repo.Save(ctx, explicit)
	require.NoError(t, err)
	next, err := repo.Save(ctx, entity.NewProducto("Sal", "", decimal.NewFromInt(1), "Despensa", ""))
	require.NoError(t, err)
	assert.Greater(t, next.ID, int64(50))
}

func TestClienteRepo_Postgres_NombreContaining(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewClienteRepository(newTestPool(t))
	for _, n := range []string{"Ana García", "Ana Rodríguez", "Pedro Martínez"} {
		_, err := repo.Save(ctx, entity.NewCliente(n, "", "", ""))
		require.NoError(t, err)
	}

	ana, err := repo.FindByNombreContaining(ctx, "Ana")
	require.NoError(t, err)
	assert.Len(t, ana, 2)

	none, err := repo.FindByNombreContaining(ctx, "Xyz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInventarioAndVenta_Postgres(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)
	productos := postgres.NewProductoRepository(pool)
	inventario := postgres.NewInventarioRepository(pool)
	ventas := postgres.NewVentaRepository(pool)

	p, err := productos.Save(ctx, entity.NewProducto("Arroz", "", decimal.NewFromInt(3), "Granos", "A1"))
	require.NoError(t, err)

	for _, c := range []int{3, 5, 10} {
		_, err := inventario.Save(ctx, &entity.Inventario{Producto: p, Cantidad: c, StockMinimo: 5})
		require.NoError(t, err)
	}
	bajo, err := inventario.FindBajoStock(ctx)
	require.NoError(t, err)
	assert.Len(t, bajo, 2)

	v, err := ventas.Save(ctx, &entity.Venta{
		FechaVenta:    time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		NombreCliente: "Ana",
		MontoTotal:    decimal.NewFromInt(6),
		MetodoPago:    "Tarjeta",
		Items:         []*entity.ItemVenta{entity.NewItemVenta(p, 2, p.Precio)},
	})
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "Arroz", v.Items[0].Producto.Nombre)

	mayor, err := ventas.FindByMontoTotalGreaterThan(ctx, decimal.NewFromInt(6))
	require.NoError(t, err)
	assert.Empty(t, mayor)
}

func TestVentaRepo_Postgres_ItemIDsDeOtraVenta(t *testing.T) {
	ctx := context.Background()
	ventas := postgres.NewVentaRepository(newTestPool(t))

	item := func(cantidad int64) *entity.ItemVenta {
		return &entity.ItemVenta{Cantidad: int(cantidad), PrecioUnitario: decimal.NewFromInt(1), Subtotal: decimal.NewFromInt(cantidad)}
	}
	a, err := ventas.Save(ctx, &entity.Venta{FechaVenta: time.Now(), NombreCliente: "A", Items: []*entity.ItemVenta{item(1)}})
	require.NoError(t, err)
	b, err := ventas.Save(ctx, &entity.Venta{FechaVenta: time.Now(), NombreCliente: "B", Items: []*entity.ItemVenta{item(1)}})
	require.NoError(t, err)

	ajeno, propio := a.Items[0].ID, b.Items[0].ID
	reusado, ajenoItem := item(2), item(5)
	reusado.ID, ajenoItem.ID = propio, ajeno
	b.Items = []*entity.ItemVenta{reusado, ajenoItem}

	updated, err := ventas.Save(ctx, b)
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, propio, updated.Items[0].ID)
	assert.NotEqual(t, ajeno, updated.Items[1].ID)

	intacta, err := ventas.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, intacta.Items, 1)
	assert.Equal(t, ajeno, intacta.Items[0].ID)
}
