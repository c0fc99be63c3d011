package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

const (
	// ancho fijo en UTC: el orden lexicográfico coincide con el cronológico.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
	dateLayout      = "2006-01-02"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha almacenada inválida %q: %w", s, err)
	}
	return t, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

// dinero guarda un decimal como TEXT con su escala ("10.50" se lee "10.50").
// Las columnas de dinero son TEXT: con afinidad NUMERIC SQLite las convertiría a REAL.
// Las comparaciones en SQL usan CAST(col AS NUMERIC).
type dinero struct {
	decimal.Decimal
}

func (d dinero) Value() (driver.Value, error) {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp), nil
	}
	return d.String(), nil
}

// ProductoJoin columnas del producto referenciado (LEFT JOIN). Todas nulas si no hay producto.
type ProductoJoin struct {
	PID           sql.NullInt64       `db:"p_id"`
	PNombre       sql.NullString      `db:"p_nombre"`
	PDescripcion  sql.NullString      `db:"p_descripcion"`
	PPrecio       decimal.NullDecimal `db:"p_precio"`
	PCategoria    sql.NullString      `db:"p_categoria"`
	PCodigoBarras sql.NullString      `db:"p_codigo_barras"`
}

const productoJoinColumns = `p.id AS p_id, p.nombre AS p_nombre, p.descripcion AS p_descripcion,
	p.precio AS p_precio, p.categoria AS p_categoria, p.codigo_barras AS p_codigo_barras`

func (j ProductoJoin) toDomain() *entity.Producto {
	if !j.PID.Valid {
		return nil
	}
	return &entity.Producto{
		ID:           j.PID.Int64,
		Nombre:       j.PNombre.String,
		Descripcion:  j.PDescripcion.String,
		Precio:       j.PPrecio.Decimal,
		Categoria:    j.PCategoria.String,
		CodigoBarras: j.PCodigoBarras.String,
	}
}

// isUniqueViolation detecta la violación de un índice UNIQUE (SQLITE_CONSTRAINT_UNIQUE).
func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
