package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

type clienteRow struct {
	ID        int64          `db:"id"`
	Nombre    string         `db:"nombre"`
	Email     sql.NullString `db:"email"`
	Telefono  string         `db:"telefono"`
	Direccion string         `db:"direccion"`
}

func toClienteRow(c *entity.Cliente) clienteRow {
	return clienteRow{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     nullIfEmpty(c.Email),
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

func (r clienteRow) toDomain() *entity.Cliente {
	return &entity.Cliente{
		ID:        r.ID,
		Nombre:    r.Nombre,
		Email:     r.Email.String,
		Telefono:  r.Telefono,
		Direccion: r.Direccion,
	}
}

const clienteColumns = `id, nombre, email, telefono, direccion`

// ClienteRepo implementación de ClienteRepository sobre SQLite.
type ClienteRepo struct {
	db *sqlx.DB
}

func NewClienteRepository(db *sqlx.DB) *ClienteRepo {
	return &ClienteRepo{db: db}
}

func (r *ClienteRepo) Save(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error) {
	row := toClienteRow(c)
	if row.ID == 0 {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO clientes (nombre, email, telefono, direccion)
			VALUES (:nombre, :email, :telefono, :direccion)`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("cliente: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("insert cliente: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("insert cliente: %w", err)
		}
	} else {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO clientes (id, nombre, email, telefono, direccion)
			VALUES (:id, :nombre, :email, :telefono, :direccion)
			ON CONFLICT(id) DO UPDATE SET
				nombre = excluded.nombre, email = excluded.email,
				telefono = excluded.telefono, direccion = excluded.direccion`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("cliente: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("upsert cliente: %w", err)
		}
	}
	return row.toDomain(), nil
}

func (r *ClienteRepo) FindByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	return r.getOne(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id = ?`, id)
}

func (r *ClienteRepo) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	return r.list(ctx, `SELECT `+clienteColumns+` FROM clientes ORDER BY id`)
}

func (r *ClienteRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) FindByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	return r.getOne(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE email = ?`, email)
}

// FindByNombreContaining usa instr: contención literal y sensible a mayúsculas (LIKE no lo es en SQLite).
func (r *ClienteRepo) FindByNombreContaining(ctx context.Context, fragmento string) ([]*entity.Cliente, error) {
	return r.list(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE instr(nombre, ?) > 0 ORDER BY id`, fragmento)
}

func (r *ClienteRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Cliente, error) {
	var row clienteRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ClienteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Cliente, error) {
	var rows []clienteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	out := make([]*entity.Cliente, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
