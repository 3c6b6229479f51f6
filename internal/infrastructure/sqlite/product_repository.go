package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, active, created_at`

// ProductRepo implementación de ProductRepository sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository acepta *sql.DB o *sql.Tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y devuelve la entidad con el ID asignado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	createdAt := product.CreatedAt().UTC()
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO products (name, price, active, created_at) VALUES (?, ?, ?, ?)`,
		product.Name(), product.Price(), product.Active(), createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return entity.NewProduct(id, product.Name(), product.Price(), product.Active(), createdAt)
}

func (r *ProductRepo) FindAll(ctx context.Context, skip, take int) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, take, skip)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// FindByID (nil, nil) si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*entity.Product, error) {
	var (
		id        int64
		name      string
		price     decimal.Decimal
		active    bool
		createdAt time.Time
	)
	if err := s.Scan(&id, &name, &price, &active, &createdAt); err != nil {
		return nil, err
	}
	return entity.NewProduct(id, name, price, active, createdAt)
}
