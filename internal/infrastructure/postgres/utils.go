package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullIfEmpty guarda las claves de negocio vacías como NULL para no chocar con el índice UNIQUE.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// syncSequence adelanta la secuencia del id tras insertar con un id explícito,
// para que el siguiente INSERT sin id no colisione.
func syncSequence(ctx context.Context, q Querier, table string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %[1]s), 1))`,
		table)
	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("sync sequence %s: %w", table, err)
	}
	return nil
}

// productoRef destino del Scan de las columnas del producto unido por LEFT JOIN.
type productoRef struct {
	id           *int64
	nombre       *string
	descripcion  *string
	precio       decimal.NullDecimal
	categoria    *string
	codigoBarras *string
}

const productoRefColumns = `p.id, p.nombre, p.descripcion, p.precio, p.categoria, p.codigo_barras`

func (p *productoRef) targets() []any {
	return []any{&p.id, &p.nombre, &p.descripcion, &p.precio, &p.categoria, &p.codigoBarras}
}

func (p *productoRef) toDomain() *entity.Producto {
	if p.id == nil {
		return nil
	}
	return &entity.Producto{
		ID:           *p.id,
		Nombre:       deref(p.nombre),
		Descripcion:  deref(p.descripcion),
		Precio:       p.precio.Decimal,
		Categoria:    deref(p.categoria),
		CodigoBarras: deref(p.codigoBarras),
	}
}
