package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/application/seed"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Marketplace-api/pkg/config"
)

// backend agrupa los adaptadores del driver configurado.
type backend struct {
	products repository.ProductRepository
	users    repository.UserRepository
	sales    repository.SaleRepository
	report   repository.ReportRepository
	tx       seed.TxRunner
	migrate  func(ctx context.Context) error
	close    func()
}

func openBackend(ctx context.Context, cfg config.DBConfig) (*backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &backend{
			products: postgres.NewProductRepository(pool),
			users:    postgres.NewUserRepository(pool),
			sales:    postgres.NewSaleRepository(pool),
			report:   postgres.NewReportRepository(pool),
			tx:       postgres.NewTxRunner(pool),
			migrate:  func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
			close:    pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &backend{
			products: sqlite.NewProductRepository(db),
			users:    sqlite.NewUserRepository(db),
			sales:    sqlite.NewSaleRepository(db),
			report:   sqlite.NewReportRepository(db),
			tx:       sqlite.NewTxRunner(db),
			migrate:  func(ctx context.Context) error { return sqlite.Migrate(ctx, db) },
			close:    func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
}
