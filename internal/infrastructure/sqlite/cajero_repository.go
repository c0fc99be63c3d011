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

var _ repository.CajeroRepository = (*CajeroRepo)(nil)

type cajeroRow struct {
	ID     int64          `db:"id"`
	Nombre string         `db:"nombre"`
	Codigo sql.NullString `db:"codigo"`
	Turno  string         `db:"turno"`
}

func toCajeroRow(c *entity.Cajero) cajeroRow {
	return cajeroRow{ID: c.ID, Nombre: c.Nombre, Codigo: nullIfEmpty(c.Codigo), Turno: c.Turno}
}

func (r cajeroRow) toDomain() *entity.Cajero {
	return &entity.Cajero{ID: r.ID, Nombre: r.Nombre, Codigo: r.Codigo.String, Turno: r.Turno}
}

const cajeroColumns = `id, nombre, codigo, turno`

// CajeroRepo implementación de CajeroRepository sobre SQLite.
type CajeroRepo struct {
	db *sqlx.DB
}

func NewCajeroRepository(db *sqlx.DB) *CajeroRepo {
	return &CajeroRepo{db: db}
}

func (r *CajeroRepo) Save(ctx context.Context, c *entity.Cajero) (*entity.Cajero, error) {
	row := toCajeroRow(c)
	if row.ID == 0 {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO cajeros (nombre, codigo, turno) VALUES (:nombre, :codigo, :turno)`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("cajero: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("insert cajero: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("insert cajero: %w", err)
		}
	} else {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO cajeros (id, nombre, codigo, turno) VALUES (:id, :nombre, :codigo, :turno)
			ON CONFLICT(id) DO UPDATE SET
				nombre = excluded.nombre, codigo = excluded.codigo, turno = excluded.turno`, row)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("cajero: %w", domain.ErrDuplicate)
			}
			return nil, fmt.Errorf("upsert cajero: %w", err)
		}
	}
	return row.toDomain(), nil
}

func (r *CajeroRepo) FindByID(ctx context.Context, id int64) (*entity.Cajero, error) {
	return r.getOne(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE id = ?`, id)
}

func (r *CajeroRepo) FindAll(ctx context.Context) ([]*entity.Cajero, error) {
	return r.list(ctx, `SELECT `+cajeroColumns+` FROM cajeros ORDER BY id`)
}

func (r *CajeroRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cajeros WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cajero: %w", err)
	}
	return nil
}

func (r *CajeroRepo) FindByCodigo(ctx context.Context, codigo string) (*entity.Cajero, error) {
	return r.getOne(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE codigo = ?`, codigo)
}

func (r *CajeroRepo) FindByTurno(ctx context.Context, turno string) ([]*entity.Cajero, error) {
	return r.list(ctx, `SELECT `+cajeroColumns+` FROM cajeros WHERE turno = ? ORDER BY id`, turno)
}

func (r *CajeroRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Cajero, error) {
	var row cajeroRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cajero: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CajeroRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Cajero, error) {
	var rows []cajeroRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cajeros: %w", err)
	}
	out := make([]*entity.Cajero, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
