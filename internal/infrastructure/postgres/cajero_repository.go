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

var _ repository.CajeroRepository = (*CajeroRepo)(nil)

const cajeroColumns = `id, nombre, codigo, turno`

// CajeroRepo implementación de CajeroRepository sobre PostgreSQL.
type CajeroRepo struct {
	q Querier
}

func NewCajeroRepository(q Querier) *CajeroRepo {
	return &CajeroRepo{q: q}
}

func (r *CajeroRepo) Save(ctx context.Context, c *entity.Cajero) (*entity.Cajero, error) {
	out := *c
	var err error
	if c.ID == 0 {
		err = r.q.QueryRow(ctx, `
			INSERT INTO cajeros (nombre, codigo, turno) VALUES ($1, $2, $3) RETURNING id`,
			c.Nombre, nullIfEmpty(c.Codigo), c.Turno,
		).Scan(&out.ID)
	} else {
		_, err = r.q.Exec(ctx, `
			INSERT INTO cajeros (id, nombre, codigo, turno) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				nombre = EXCLUDED.nombre, codigo = EXCLUDED.codigo, turno = EXCLUDED.turno`,
			c.ID, c.Nombre, nullIfEmpty(c.Codigo), c.Turno,
		)
		if err == nil {
			err = syncSequence(ctx, r.q, "cajeros")
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("cajero: %w", domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("save cajero: %w", err)
	}
	return &out, nil
}

func (r *CajeroRepo) FindByID(ctx context.Context, id int64) (*entity.Cajero, error) {
	return r.getOne(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE id = $1`, id)
}

func (r *CajeroRepo) FindAll(ctx context.Context) ([]*entity.Cajero, error) {
	return r.list(ctx, `SELECT `+cajeroColumns+` FROM cajeros ORDER BY id`)
}

func (r *CajeroRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cajeros WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cajero: %w", err)
	}
	return nil
}

func (r *CajeroRepo) FindByCodigo(ctx context.Context, codigo string) (*entity.Cajero, error) {
	return r.getOne(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE codigo = $1`, codigo)
}

func (r *CajeroRepo) FindByTurno(ctx context.Context, turno string) ([]*entity.Cajero, error) {
	return r.list(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE turno = $1 ORDER BY id`, turno)
}

func scanCajero(row pgx.Row) (*entity.Cajero, error) {
	var c entity.Cajero
	var codigo *string
	if err := row.Scan(&c.ID, &c.Nombre, &codigo, &c.Turno); err != nil {
		return nil, err
	}
	c.Codigo = deref(codigo)
	return &c, nil
}

func (r *CajeroRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Cajero, error) {
	c, err := scanCajero(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cajero: %w", err)
	}
	return c, nil
}

func (r *CajeroRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Cajero, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cajeros: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Cajero, 0)
	for rows.Next() {
		c, err := scanCajero(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cajero: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
