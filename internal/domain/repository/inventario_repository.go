package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InventarioRepository define el puerto de persistencia para Inventario.
type InventarioRepository interface {
	CrudRepository[entity.Inventario]
	FindByProducto(ctx context.Context, productoID int64) (*entity.Inventario, error)
	// FindBajoStock devuelve los registros con cantidad <= stock mínimo.
	FindBajoStock(ctx context.Context) ([]*entity.Inventario, error)
	FindByUbicacion(ctx context.Context, ubicacion string) ([]*entity.Inventario, error)
}
