// Package store elige el adaptador de persistencia según DB_DRIVER y expone los repositorios.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/supermercado-api/pkg/config"
)

// Repositories agrupa los puertos de persistencia de la aplicación.
type Repositories struct {
	Productos  repository.ProductoRepository
	Clientes   repository.ClienteRepository
	Cajeros    repository.CajeroRepository
	Inventario repository.InventarioRepository
	Ventas     repository.VentaRepository

	close func()
}

// Close libera el pool o la base SQLite.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open abre el almacenamiento configurado. Con sqlite el esquema siempre se asegura al abrir.
func Open(ctx context.Context, cfg config.DBConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Productos:  postgres.NewProductoRepository(pool),
			Clientes:   postgres.NewClienteRepository(pool),
			Cajeros:    postgres.NewCajeroRepository(pool),
			Inventario: postgres.NewInventarioRepository(pool),
			Ventas:     postgres.NewVentaRepository(pool),
			close:      pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Productos:  sqlite.NewProductoRepository(db),
			Clientes:   sqlite.NewClienteRepository(db),
			Cajeros:    sqlite.NewCajeroRepository(db),
			Inventario: sqlite.NewInventarioRepository(db),
			Ventas:     sqlite.NewVentaRepository(db),
			close:      func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento no soportado: %q", cfg.Driver)
	}
}
