package repository

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	CrudRepository[entity.Cliente]
	FindByEmail(ctx context.Context, email string) (*entity.Cliente, error)
	// FindByNombreContaining busca por contención literal y sensible a mayúsculas.
	FindByNombreContaining(ctx context.Context, fragmento string) ([]*entity.Cliente, error)
}
