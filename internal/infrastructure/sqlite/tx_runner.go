package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/application/seed"
)

var _ seed.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run hace Commit si fn no falla; en otro caso Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos seed.Repositories) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := seed.Repositories{
		Users:    NewUserRepository(tx),
		Products: NewProductRepository(tx),
		Sales:    NewSaleRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
