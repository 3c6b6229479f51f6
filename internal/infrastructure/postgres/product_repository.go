package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, active, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve la entidad con el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (name, price, active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns
	out, err := scanProduct(r.q.QueryRow(ctx, query,
		product.Name(), product.Price(), product.Active(), product.CreatedAt(),
	))
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return out, nil
}

// FindAll lista productos del más reciente al más antiguo.
func (r *ProductRepo) FindAll(ctx context.Context, skip, take int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, take, skip)
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

// FindByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Count total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
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
