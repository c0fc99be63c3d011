package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

const inventarioSelect = `
	SELECT i.id, i.cantidad, i.stock_minimo, i.stock_maximo, i.fecha_ultima_reposicion, i.ubicacion,
	       ` + productoRefColumns + `
	FROM inventario i
	LEFT JOIN productos p ON p.id = i.producto_id`

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL.
// El producto se resuelve con LEFT JOIN; una referencia nula deja Producto en nil.
type InventarioRepo struct {
	q Querier
}

func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Save persiste el registro y lo relee para devolver el producto completo.
func (r *InventarioRepo) Save(ctx context.Context, i *entity.Inventario) (*entity.Inventario, error) {
	id := i.ID
	var err error
	if id == 0 {
		err = r.q.QueryRow(ctx, `
			INSERT INTO inventario (producto_id, cantidad, stock_minimo, stock_maximo, fecha_ultima_reposicion, ubicacion)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			nullID(i.ProductoID()), i.Cantidad, i.StockMinimo, i.StockMaximo, i.FechaUltimaReposicion, i.Ubicacion,
		).Scan(&id)
	} else {
		_, err = r.q.Exec(ctx, `
			INSERT INTO inventario (id, producto_id, cantidad, stock_minimo, stock_maximo, fecha_ultima_reposicion, ubicacion)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				producto_id = EXCLUDED.producto_id, cantidad = EXCLUDED.cantidad,
				stock_minimo = EXCLUDED.stock_minimo, stock_maximo = EXCLUDED.stock_maximo,
				fecha_ultima_reposicion = EXCLUDED.fecha_ultima_reposicion, ubicacion = EXCLUDED.ubicacion`,
			id, nullID(i.ProductoID()), i.Cantidad, i.StockMinimo, i.StockMaximo, i.FechaUltimaReposicion, i.Ubicacion,
		)
		if err == nil {
			err = syncSequence(ctx, r.q, "inventario")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("save inventario: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *InventarioRepo) FindByID(ctx context.Context, id int64) (*entity.Inventario, error) {
	return r.getOne(ctx, inventarioSelect+` WHERE i.id = $1`, id)
}

func (r *InventarioRepo) FindAll(ctx context.Context) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` ORDER BY i.id`)
}

func (r *InventarioRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventario WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	return nil
}

// FindByProducto devuelve el primer registro del producto (por ID ascendente).
func (r *InventarioRepo) FindByProducto(ctx context.Context, productoID int64) (*entity.Inventario, error) {
	return r.getOne(ctx, inventarioSelect+` WHERE i.producto_id = $1 ORDER BY i.id LIMIT 1`, productoID)
}

func (r *InventarioRepo) FindBajoStock(ctx context.Context) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` WHERE i.cantidad <= i.stock_minimo ORDER BY i.id`)
}

func (r *InventarioRepo) FindByUbicacion(ctx context.Context, ubicacion string) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` WHERE i.ubicacion = $1 ORDER BY i.id`, ubicacion)
}

func scanInventario(row pgx.Row) (*entity.Inventario, error) {
	var inv entity.Inventario
	var ref productoRef
	dest := append([]any{
		&inv.ID, &inv.Cantidad, &inv.StockMinimo, &inv.StockMaximo, &inv.FechaUltimaReposicion, &inv.Ubicacion,
	}, ref.targets()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	inv.Producto = ref.toDomain()
	return &inv, nil
}

func (r *InventarioRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Inventario, error) {
	inv, err := scanInventario(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return inv, nil
}

func (r *InventarioRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Inventario, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Inventario, 0)
	for rows.Next() {
		inv, err := scanInventario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
