package repository

import "context"

// CrudRepository es el puerto de persistencia común a todas las entidades (DIP).
//
// Contrato:
//   - Save hace upsert por presencia de ID: ID 0 inserta y el almacén asigna el ID;
//     ID distinto de 0 inserta o reemplaza la fila con ese ID. Devuelve la forma almacenada.
//   - FindByID devuelve (nil, nil) si no existe.
//   - FindAll devuelve un slice vacío (nunca nil) si no hay filas.
//   - DeleteByID no falla si el ID no existe.
type CrudRepository[T any] interface {
	Save(ctx context.Context, e *T) (*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	DeleteByID(ctx context.Context, id int64) error
}
