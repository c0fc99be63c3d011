// Package sqlite implementa los puertos de repositorio sobre SQLite embebido
// (sqlx + modernc.org/sqlite, sin cgo). Se usa con DB_DRIVER=sqlite y en los tests.
package sqlite

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver SQLite en Go puro
)

//go:embed schema.sql
var schema string

// Open abre la base, fija una sola conexión y crea el esquema si no existe.
// Con ":memory:" cada conexión nueva sería una base distinta, por eso MaxOpenConns = 1.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("crear esquema sqlite: %w", err)
	}
	return nil
}
