package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

type inventarioRow struct {
	ID                    int64          `db:"id"`
	ProductoID            sql.NullInt64  `db:"producto_id"`
	Cantidad              int            `db:"cantidad"`
	StockMinimo           int            `db:"stock_minimo"`
	StockMaximo           int            `db:"stock_maximo"`
	FechaUltimaReposicion sql.NullString `db:"fecha_ultima_reposicion"`
	Ubicacion             string         `db:"ubicacion"`
	ProductoJoin
}

func toInventarioRow(i *entity.Inventario) inventarioRow {
	row := inventarioRow{
		ID:          i.ID,
		ProductoID:  nullID(i.ProductoID()),
		Cantidad:    i.Cantidad,
		StockMinimo: i.StockMinimo,
		StockMaximo: i.StockMaximo,
		Ubicacion:   i.Ubicacion,
	}
	if i.FechaUltimaReposicion != nil {
		row.FechaUltimaReposicion = nullIfEmpty(i.FechaUltimaReposicion.Format(dateLayout))
	}
	return row
}

func (r inventarioRow) toDomain() (*entity.Inventario, error) {
	inv := &entity.Inventario{
		ID:          r.ID,
		Producto:    r.ProductoJoin.toDomain(),
		Cantidad:    r.Cantidad,
		StockMinimo: r.StockMinimo,
		StockMaximo: r.StockMaximo,
		Ubicacion:   r.Ubicacion,
	}
	if r.FechaUltimaReposicion.Valid {
		f, err := time.Parse(dateLayout, r.FechaUltimaReposicion.String)
		if err != nil {
			return nil, fmt.Errorf("fecha de reposición inválida %q: %w", r.FechaUltimaReposicion.String, err)
		}
		inv.FechaUltimaReposicion = &f
	}
	return inv, nil
}

const inventarioSelect = `
	SELECT i.id, i.producto_id, i.cantidad, i.stock_minimo, i.stock_maximo,
	       i.fecha_ultima_reposicion, i.ubicacion, ` + productoJoinColumns + `
	FROM inventario i
	LEFT JOIN productos p ON p.id = i.producto_id`

// InventarioRepo implementación de InventarioRepository sobre SQLite.
// El producto referenciado se resuelve con LEFT JOIN en cada lectura.
type InventarioRepo struct {
	db *sqlx.DB
}

func NewInventarioRepository(db *sqlx.DB) *InventarioRepo {
	return &InventarioRepo{db: db}
}

// Save persiste el registro y lo relee para devolver el producto completo.
func (r *InventarioRepo) Save(ctx context.Context, i *entity.Inventario) (*entity.Inventario, error) {
	row := toInventarioRow(i)
	if row.ID == 0 {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO inventario (producto_id, cantidad, stock_minimo, stock_maximo, fecha_ultima_reposicion, ubicacion)
			VALUES (:producto_id, :cantidad, :stock_minimo, :stock_maximo, :fecha_ultima_reposicion, :ubicacion)`, row)
		if err != nil {
			return nil, fmt.Errorf("insert inventario: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("insert inventario: %w", err)
		}
	} else {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO inventario (id, producto_id, cantidad, stock_minimo, stock_maximo, fecha_ultima_reposicion, ubicacion)
			VALUES (:id, :producto_id, :cantidad, :stock_minimo, :stock_maximo, :fecha_ultima_reposicion, :ubicacion)
			ON CONFLICT(id) DO UPDATE SET
				producto_id = excluded.producto_id, cantidad = excluded.cantidad,
				stock_minimo = excluded.stock_minimo, stock_maximo = excluded.stock_maximo,
				fecha_ultima_reposicion = excluded.fecha_ultima_reposicion, ubicacion = excluded.ubicacion`, row)
		if err != nil {
			return nil, fmt.Errorf("upsert inventario: %w", err)
		}
	}
	return r.FindByID(ctx, row.ID)
}

func (r *InventarioRepo) FindByID(ctx context.Context, id int64) (*entity.Inventario, error) {
	return r.getOne(ctx, inventarioSelect+` WHERE i.id = ?`, id)
}

func (r *InventarioRepo) FindAll(ctx context.Context) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` ORDER BY i.id`)
}

func (r *InventarioRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventario WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	return nil
}

// FindByProducto devuelve el primer registro del producto (por ID ascendente).
func (r *InventarioRepo) FindByProducto(ctx context.Context, productoID int64) (*entity.Inventario, error) {
	return r.getOne(ctx, inventarioSelect+` WHERE i.producto_id = ? ORDER BY i.id LIMIT 1`, productoID)
}

func (r *InventarioRepo) FindBajoStock(ctx context.Context) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` WHERE i.cantidad <= i.stock_minimo ORDER BY i.id`)
}

func (r *InventarioRepo) FindByUbicacion(ctx context.Context, ubicacion string) ([]*entity.Inventario, error) {
	return r.list(ctx, inventarioSelect+` WHERE i.ubicacion = ? ORDER BY i.id`, ubicacion)
}

func (r *InventarioRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Inventario, error) {
	var row inventarioRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return row.toDomain()
}

func (r *InventarioRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Inventario, error) {
	var rows []inventarioRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	out := make([]*entity.Inventario, 0, len(rows))
	for _, row := range rows {
		inv, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}
