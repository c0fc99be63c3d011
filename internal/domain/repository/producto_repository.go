package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	CrudRepository[entity.Producto]
	FindByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error)
	// FindByPrecioBetween incluye ambos extremos.
	FindByPrecioBetween(ctx context.Context, min, max decimal.Decimal) ([]*entity.Producto, error)
	FindByCodigoBarras(ctx context.Context, codigoBarras string) (*entity.Producto, error)
}
