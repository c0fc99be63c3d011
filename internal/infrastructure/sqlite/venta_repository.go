package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

type ventaRow struct {
	ID            int64           `db:"id"`
	FechaVenta    string          `db:"fecha_venta"`
	NombreCliente string          `db:"nombre_cliente"`
	MontoTotal    dinero          `db:"monto_total"`
	MetodoPago    string          `db:"metodo_pago"`
}

type itemVentaRow struct {
	ID             int64           `db:"id"`
	VentaID        int64           `db:"venta_id"`
	ProductoID     sql.NullInt64   `db:"producto_id"`
	Cantidad       int             `db:"cantidad"`
	PrecioUnitario dinero          `db:"precio_unitario"`
	Subtotal       dinero          `db:"subtotal"`
	ProductoJoin
}

func toVentaRow(v *entity.Venta) ventaRow {
	return ventaRow{
		ID:            v.ID,
		FechaVenta:    formatTimestamp(v.FechaVenta),
		NombreCliente: v.NombreCliente,
		MontoTotal:    dinero{v.MontoTotal},
		MetodoPago:    v.MetodoPago,
	}
}

// toItemVentaRows reconstruye el vínculo padre-hijo: cada item apunta a la venta ventaID.
func toItemVentaRows(ventaID int64, items []*entity.ItemVenta) []itemVentaRow {
	rows := make([]itemVentaRow, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		rows = append(rows, itemVentaRow{
			ID:             it.ID,
			VentaID:        ventaID,
			ProductoID:     nullID(it.ProductoID()),
			Cantidad:       it.Cantidad,
			PrecioUnitario: dinero{it.PrecioUnitario},
			Subtotal:       dinero{it.Subtotal},
		})
	}
	return rows
}

func (r ventaRow) toDomain(items []*entity.ItemVenta) (*entity.Venta, error) {
	fecha, err := parseTimestamp(r.FechaVenta)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.ItemVenta{}
	}
	return &entity.Venta{
		ID:            r.ID,
		FechaVenta:    fecha,
		NombreCliente: r.NombreCliente,
		Items:         items,
		MontoTotal:    r.MontoTotal.Decimal,
		MetodoPago:    r.MetodoPago,
	}, nil
}

func (r itemVentaRow) toDomain() *entity.ItemVenta {
	return &entity.ItemVenta{
		ID:             r.ID,
		Producto:       r.ProductoJoin.toDomain(),
		Cantidad:       r.Cantidad,
		PrecioUnitario: r.PrecioUnitario.Decimal,
		Subtotal:       r.Subtotal.Decimal,
	}
}

const ventaColumns = `id, fecha_venta, nombre_cliente, monto_total, metodo_pago`

const itemVentaSelect = `
	SELECT iv.id, iv.venta_id, iv.producto_id, iv.cantidad, iv.precio_unitario, iv.subtotal,
	       ` + productoJoinColumns + `
	FROM items_venta iv
	LEFT JOIN productos p ON p.id = iv.producto_id`

// VentaRepo implementación de VentaRepository sobre SQLite.
type VentaRepo struct {
	db *sqlx.DB
}

func NewVentaRepository(db *sqlx.DB) *VentaRepo {
	return &VentaRepo{db: db}
}

// Save guarda cabecera e items en una transacción. Los items anteriores de la venta
// se eliminan y se insertan los de la colección recibida. Un item conserva su ID solo si
// ya pertenecía a esta venta; cualquier otro ID se ignora y el almacenamiento asigna uno.
func (r *VentaRepo) Save(ctx context.Context, v *entity.Venta) (*entity.Venta, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := toVentaRow(v)
	propios := map[int64]bool{}
	if row.ID == 0 {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO ventas (fecha_venta, nombre_cliente, monto_total, metodo_pago)
			VALUES (:fecha_venta, :nombre_cliente, :monto_total, :metodo_pago)`, row)
		if err != nil {
			return nil, fmt.Errorf("insert venta: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("insert venta: %w", err)
		}
	} else {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO ventas (id, fecha_venta, nombre_cliente, monto_total, metodo_pago)
			VALUES (:id, :fecha_venta, :nombre_cliente, :monto_total, :metodo_pago)
			ON CONFLICT(id) DO UPDATE SET
				fecha_venta = excluded.fecha_venta, nombre_cliente = excluded.nombre_cliente,
				monto_total = excluded.monto_total, metodo_pago = excluded.metodo_pago`, row)
		if err != nil {
			return nil, fmt.Errorf("upsert venta: %w", err)
		}
		var previos []int64
		if err := tx.SelectContext(ctx, &previos, `SELECT id FROM items_venta WHERE venta_id = ?`, row.ID); err != nil {
			return nil, fmt.Errorf("select items venta: %w", err)
		}
		for _, itemID := range previos {
			propios[itemID] = true
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM items_venta WHERE venta_id = ?`, row.ID); err != nil {
			return nil, fmt.Errorf("delete items venta: %w", err)
		}
	}

	for _, item := range toItemVentaRows(row.ID, v.Items) {
		var err error
		if !propios[item.ID] {
			_, err = tx.NamedExecContext(ctx, `
				INSERT INTO items_venta (venta_id, producto_id, cantidad, precio_unitario, subtotal)
				VALUES (:venta_id, :producto_id, :cantidad, :precio_unitario, :subtotal)`, item)
		} else {
			delete(propios, item.ID)
			_, err = tx.NamedExecContext(ctx, `
				INSERT INTO items_venta (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
				VALUES (:id, :venta_id, :producto_id, :cantidad, :precio_unitario, :subtotal)`, item)
		}
		if err != nil {
			return nil, fmt.Errorf("insert item venta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return r.FindByID(ctx, row.ID)
}

func (r *VentaRepo) FindByID(ctx context.Context, id int64) (*entity.Venta, error) {
	list, err := r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE id = ?`, id)
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ventas WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) FindByFechaVentaBetween(ctx context.Context, inicio, fin time.Time) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE fecha_venta BETWEEN ? AND ? ORDER BY id`,
		formatTimestamp(inicio), formatTimestamp(fin))
}

func (r *VentaRepo) FindByNombreCliente(ctx context.Context, nombreCliente string) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE nombre_cliente = ? ORDER BY id`, nombreCliente)
}

func (r *VentaRepo) FindByMontoTotalGreaterThan(ctx context.Context, montoMinimo decimal.Decimal) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE CAST(monto_total AS NUMERIC) > CAST(? AS NUMERIC) ORDER BY id`,
		dinero{montoMinimo})
}

func (r *VentaRepo) FindByMetodoPago(ctx context.Context, metodoPago string) ([]*entity.Venta, error) {
	return r.list(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE metodo_pago = ? ORDER BY id`, metodoPago)
}

// list carga las cabeceras y luego todos sus items en una sola consulta.
func (r *VentaRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Venta, error) {
	var rows []ventaRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	out := make([]*entity.Venta, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	itemsByVenta, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		v, err := row.toDomain(itemsByVenta[row.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *VentaRepo) itemsFor(ctx context.Context, ventaIDs []int64) (map[int64][]*entity.ItemVenta, error) {
	query, args, err := sqlx.In(itemVentaSelect+` WHERE iv.venta_id IN (?) ORDER BY iv.id`, ventaIDs)
	if err != nil {
		return nil, fmt.Errorf("items venta: %w", err)
	}
	var rows []itemVentaRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("items venta: %w", err)
	}
	byVenta := make(map[int64][]*entity.ItemVenta, len(ventaIDs))
	for _, row := range rows {
		byVenta[row.VentaID] = append(byVenta[row.VentaID], row.toDomain())
	}
	return byVenta, nil
}
