package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, fecha_venta, nombre_cliente, monto_total, metodo_pago`

const itemVentaSelect = `
	SELECT iv.id, iv.venta_id, iv.cantidad, iv.precio_unitario, iv.subtotal, ` + productoRefColumns + `
	FROM items_venta iv
	LEFT JOIN productos p ON p.id = iv.producto_id`

// VentaRepo implementación de VentaRepository sobre PostgreSQL. La venta es dueña de sus items.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Con un pool, Save abre su propia transacción;
// con una tx, Begin crea un savepoint.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Save guarda cabecera e items en una transacción: upsert de la cabecera, borrado de los
// items anteriores e inserción de los recibidos enlazados a la venta. Un item conserva su
// ID solo si ya pertenecía a esta venta; los demás toman la secuencia.
func (r *VentaRepo) Save(ctx context.Context, v *entity.Venta) (*entity.Venta, error) {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := v.ID
	propios := map[int64]bool{}
	if id == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO ventas (fecha_venta, nombre_cliente, monto_total, metodo_pago)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			v.FechaVenta, v.NombreCliente, v.MontoTotal, v.MetodoPago,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert venta: %w", err)
		}
	} else {
		_, err = tx.Exec(ctx, `
			INSERT INTO ventas (id, fecha_venta, nombre_cliente, monto_total, metodo_pago)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				fecha_venta = EXCLUDED.fecha_venta, nombre_cliente = EXCLUDED.nombre_cliente,
				monto_total = EXCLUDED.monto_total, metodo_pago = EXCLUDED.metodo_pago`,
			id, v.FechaVenta, v.NombreCliente, v.MontoTotal, v.MetodoPago,
		)
		if err != nil {
			return nil, fmt.Errorf("upsert venta: %w", err)
		}
		if err := syncSequence(ctx, tx, "ventas"); err != nil {
			return nil, err
		}
		rows, err := tx.Query(ctx, `DELETE FROM items_venta WHERE venta_id = $1 RETURNING id`, id)
		if err != nil {
			return nil, fmt.Errorf("delete items venta: %w", err)
		}
		previos, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return nil, fmt.Errorf("delete items venta: %w", err)
		}
		for _, itemID := range previos {
			propios[itemID] = true
		}
	}

	batch := &pgx.Batch{}
	for _, it := range v.Items {
		if it == nil {
			continue
		}
		if !propios[it.ID] {
			batch.Queue(`
				INSERT INTO items_venta (venta_id, producto_id, cantidad, precio_unitario, subtotal)
				VALUES ($1, $2, $3, $4, $5)`,
				id, nullID(it.ProductoID()), it.Cantidad, it.PrecioUnitario, it.Subtotal)
			continue
		}
		delete(propios, it.ID)
		batch.Queue(`
			INSERT INTO items_venta (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, id, nullID(it.ProductoID()), it.Cantidad, it.PrecioUnitario, it.Subtotal)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, fmt.Errorf("insert items venta: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *VentaRepo) FindByID(ctx context.Context, id int64) (*entity.Venta, error) {
	list, err := r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *VentaRepo) FindAll(ctx context.Context) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas ORDER BY id`)
}

// DeleteByID elimina la venta; sus items caen por ON DELETE CASCADE.
func (r *VentaRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) FindByFechaVentaBetween(ctx context.Context, inicio, fin time.Time) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE fecha_venta BETWEEN $1 AND $2 ORDER BY id`, inicio, fin)
}

func (r *VentaRepo) FindByNombreCliente(ctx context.Context, nombreCliente string) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE nombre_cliente = $1 ORDER BY id`, nombreCliente)
}

func (r *VentaRepo) FindByMontoTotalGreaterThan(ctx context.Context, montoMinimo decimal.Decimal) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE monto_total > $1 ORDER BY id`, montoMinimo)
}

func (r *VentaRepo) FindByMetodoPago(ctx context.Context, metodoPago string) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE metodo_pago = $1 ORDER BY id`, metodoPago)
}

// list carga las cabeceras y después todos sus items con una sola consulta (venta_id = ANY).
func (r *VentaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	ventas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Venta, error) {
		v := &entity.Venta{Items: []*entity.ItemVenta{}}
		err := row.Scan(&v.ID, &v.FechaVenta, &v.NombreCliente, &v.MontoTotal, &v.MetodoPago)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan venta: %w", err)
	}
	if len(ventas) == 0 {
		return ventas, nil
	}

	byID := make(map[int64]*entity.Venta, len(ventas))
	ids := make([]int64, 0, len(ventas))
	for _, v := range ventas {
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	itemRows, err := r.q.Query(ctx, itemVentaSelect+` WHERE iv.venta_id = ANY($1) ORDER BY iv.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("items venta: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.ItemVenta
		var ventaID int64
		var ref productoRef
		dest := append([]any{&it.ID, &ventaID, &it.Cantidad, &it.PrecioUnitario, &it.Subtotal}, ref.targets()...)
		if err := itemRows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan item venta: %w", err)
		}
		it.Producto = ref.toDomain()
		if v, ok := byID[ventaID]; ok {
			v.Items = append(v.Items, &it)
		}
	}
	return ventas, itemRows.Err()
}
