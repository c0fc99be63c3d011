package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, precio, categoria, codigo_barras`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Save inserta (ID 0, el id lo asigna la secuencia) o inserta-o-reemplaza por ID.
func (r *ProductoRepo) Save(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	out := *p
	var err error
	if p.ID == 0 {
		err = r.q.QueryRow(ctx, `
			INSERT INTO productos (nombre, descripcion, precio, categoria, codigo_barras)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			p.Nombre, p.Descripcion, p.Precio, p.Categoria, nullIfEmpty(p.CodigoBarras),
		).Scan(&out.ID)
	} else {
		_, err = r.q.Exec(ctx, `
			INSERT INTO productos (id, nombre, descripcion, precio, categoria, codigo_barras)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				nombre = EXCLUDED.nombre, descripcion = EXCLUDED.descripcion, precio = EXCLUDED.precio,
				categoria = EXCLUDED.categoria, codigo_barras = EXCLUDED.codigo_barras`,
			p.ID, p.Nombre, p.Descripcion, p.Precio, p.Categoria, nullIfEmpty(p.CodigoBarras),
		)
		if err == nil {
			err = syncSequence(ctx, r.q, "productos")
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("producto: %w", domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("save producto: %w", err)
	}
	return &out, nil
}

func (r *ProductoRepo) FindByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

func (r *ProductoRepo) FindAll(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos ORDER BY id`)
}

func (r *ProductoRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) FindByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos WHERE categoria = $1 ORDER BY id`, categoria)
}

func (r *ProductoRepo) FindByPrecioBetween(ctx context.Context, min, max decimal.Decimal) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos WHERE precio BETWEEN $1 AND $2 ORDER BY id`, min, max)
}

func (r *ProductoRepo) FindByCodigoBarras(ctx context.Context, codigoBarras string) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE codigo_barras = $1`, codigoBarras)
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var codigo *string
	if err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria, &codigo); err != nil {
		return nil, err
	}
	p.CodigoBarras = deref(codigo)
	return &p, nil
}

func (r *ProductoRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

func (r *ProductoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Producto, 0)
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
