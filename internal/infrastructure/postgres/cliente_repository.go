package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, email, telefono, direccion`

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func (r *ClienteRepo) Save(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error) {
	out := *c
	var err error
	if c.ID == 0 {
		err = r.q.QueryRow(ctx, `
			INSERT INTO clientes (nombre, email, telefono, direccion)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			c.Nombre, nullIfEmpty(c.Email), c.Telefono, c.Direccion,
		).Scan(&out.ID)
	} else {
		_, err = r.q.Exec(ctx, `
			INSERT INTO clientes (id, nombre, email, telefono, direccion)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				nombre = EXCLUDED.nombre, email = EXCLUDED.email,
				telefono = EXCLUDED.telefono, direccion = EXCLUDED.direccion`,
			c.ID, c.Nombre, nullIfEmpty(c.Email), c.Telefono, c.Direccion,
		)
		if err == nil {
			err = syncSequence(ctx, r.q, "clientes")
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("cliente: %w", domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("save cliente: %w", err)
	}
	return &out, nil
}

func (r *ClienteRepo) FindByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	return r.getOne(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id)
}

func (r *ClienteRepo) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	return r.list(ctx, `SELECT `+clienteColumns+` FROM clientes ORDER BY id`)
}

func (r *ClienteRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) FindByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	return r.getOne(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE email = $1`, email)
}

// FindByNombreContaining usa strpos: contención literal, sin comodines y sensible a mayúsculas.
func (r *ClienteRepo) FindByNombreContaining(ctx context.Context, fragmento string) ([]*entity.Cliente, error) {
	return r.list(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE strpos(nombre, $1) > 0 ORDER BY id`, fragmento)
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var email *string
	if err := row.Scan(&c.ID, &c.Nombre, &email, &c.Telefono, &c.Direccion); err != nil {
		return nil, err
	}
	c.Email = deref(email)
	return &c, nil
}

func (r *ClienteRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
