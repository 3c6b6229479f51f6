package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/persistence"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre SQLite.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta; conserva las relaciones ya adjuntas a la entidad.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	createdAt := sale.CreatedAt().UTC()
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO sales (value, product_id, customer_id, partner_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		sale.Value(), sale.ProductID(), sale.CustomerID(), sale.PartnerID(), createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	return entity.NewSale(entity.SaleParams{
		ID:         id,
		Value:      sale.Value(),
		ProductID:  sale.ProductID(),
		CustomerID: sale.CustomerID(),
		PartnerID:  sale.PartnerID(),
		CreatedAt:  createdAt,
		Product:    sale.Product(),
		Customer:   sale.Customer(),
		Partner:    sale.Partner(),
	})
}

func (r *SaleRepo) FindAll(ctx context.Context, skip, take int) ([]*entity.Sale, error) {
	return querySales(ctx, r.q, persistence.SaleSelect+persistence.SaleOrder+` LIMIT ? OFFSET ?`, take, skip)
}

func (r *SaleRepo) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var row persistence.SaleRow
	err := r.q.QueryRowContext(ctx, persistence.SaleSelect+` WHERE s.id = ?`, id).Scan(row.Dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return row.ToEntity()
}

func (r *SaleRepo) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Sale, error) {
	return querySales(ctx, r.q, persistence.SaleSelect+` WHERE s.partner_id = ?`+persistence.SaleOrder, partnerID)
}

func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

func querySales(ctx context.Context, q Querier, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var row persistence.SaleRow
		if err := rows.Scan(row.Dest()...); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sale, err := row.ToEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}
