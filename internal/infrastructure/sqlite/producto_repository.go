package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

type productoRow struct {
	ID           int64           `db:"id"`
	Nombre       string          `db:"nombre"`
	Descripcion  string          `db:"descripcion"`
	Precio       dinero          `db:"precio"`
	Categoria    string          `db:"categoria"`
	CodigoBarras sql.NullString  `db:"codigo_barras"`
}

func toProductoRow(p *entity.Producto) productoRow {
	return productoRow{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       dinero{p.Precio},
		Categoria:    p.Categoria,
		CodigoBarras: nullIfEmpty(p.CodigoBarras),
	}
}

func (r productoRow) toDomain() *entity.Producto {
	return &entity.Producto{
		ID:           r.ID,
		Nombre:       r.Nombre,
		Descripcion:  r.Descripcion,
		Precio:       r.Precio.Decimal,
		Categoria:    r.Categoria,
		CodigoBarras: r.CodigoBarras.String,
	}
}

const productoColumns = `id, nombre, descripcion, precio, categoria, codigo_barras`

// ProductoRepo implementación de ProductoRepository sobre SQLite.
type ProductoRepo struct {
	db *sqlx.DB
}

func NewProductoRepository(db *sqlx.DB) *ProductoRepo {
	return &ProductoRepo{db: db}
}

// Save inserta (ID 0) o inserta-o-reemplaza por ID.
func (r *ProductoRepo) Save(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	row := toProductoRow(p)
	if row.ID == 0 {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO productos (nombre, descripcion, precio, categoria, codigo_barras)
			VALUES (:nombre, :descripcion, :precio, :categoria, :codigo_barras)`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("producto: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("insert producto: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("insert producto: %w", err)
		}
	} else {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO productos (id, nombre, descripcion, precio, categoria, codigo_barras)
			VALUES (:id, :nombre, :descripcion, :precio, :categoria, :codigo_barras)
			ON CONFLICT(id) DO UPDATE SET
				nombre = excluded.nombre, descripcion = excluded.descripcion, precio = excluded.precio,
				categoria = excluded.categoria, codigo_barras = excluded.codigo_barras`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("producto: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("upsert producto: %w", err)
		}
	}
	return row.toDomain(), nil
}

func (r *ProductoRepo) FindByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE id = ?`, id)
}

func (r *ProductoRepo) FindAll(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos ORDER BY id`)
}

func (r *ProductoRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM productos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) FindByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos WHERE categoria = ? ORDER BY id`, categoria)
}

func (r *ProductoRepo) FindByPrecioBetween(ctx context.Context, min, max decimal.Decimal) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos WHERE CAST(precio AS NUMERIC) BETWEEN CAST(? AS NUMERIC) AND CAST(? AS NUMERIC) ORDER BY id`,
		dinero{min}, dinero{max})
}

func (r *ProductoRepo) FindByCodigoBarras(ctx context.Context, codigoBarras string) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE codigo_barras = ?`, codigoBarras)
}

func (r *ProductoRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Producto, error) {
	var row productoRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ProductoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Producto, error) {
	var rows []productoRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	out := make([]*entity.Producto, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
