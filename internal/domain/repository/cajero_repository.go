package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// CajeroRepository define el puerto de persistencia para Cajero.
type CajeroRepository interface {
	CrudRepository[entity.Cajero]
	FindByCodigo(ctx context.Context, codigo string) (*entity.Cajero, error)
	FindByTurno(ctx context.Context, turno string) ([]*entity.Cajero, error)
}
