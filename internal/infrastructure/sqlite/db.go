// Package sqlite implementa los puertos de persistencia sobre SQLite embebido
// (mattn/go-sqlite3). Útil para desarrollo local y pruebas sin servidor PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Querier es el subconjunto común de *sql.DB y *sql.Tx que usan los repositorios.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT     NOT NULL,
	email      TEXT     NOT NULL UNIQUE,
	role       TEXT     NOT NULL CHECK (role IN ('ADMIN', 'PARTNER', 'CUSTOMER')),
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);

CREATE TABLE IF NOT EXISTS products (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT     NOT NULL,
	price      NUMERIC  NOT NULL CHECK (price >= 0),
	active     BOOLEAN  NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sales (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	value       NUMERIC  NOT NULL CHECK (value > 0),
	product_id  INTEGER  NOT NULL REFERENCES products(id),
	customer_id INTEGER  NOT NULL REFERENCES users(id),
	partner_id  INTEGER  NOT NULL REFERENCES users(id),
	created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_partner_id ON sales(partner_id);
CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at);
`

// Open abre la base (path de archivo o ":memory:") con claves foráneas activas.
// Se limita a una conexión: SQLite admite un solo escritor y ":memory:" es por conexión.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init sqlite schema: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
