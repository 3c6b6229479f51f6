package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/persistence"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// insertSaleSQL devuelve el valor tal como quedó en NUMERIC(12,2).
const insertSaleSQL = `
		INSERT INTO sales (value, product_id, customer_id, partner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, value, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta; la entidad devuelta conserva las relaciones ya adjuntas.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	var (
		id        int64
		value     decimal.Decimal
		createdAt time.Time
	)
	err := r.q.QueryRow(ctx, insertSaleSQL,
		sale.Value(), sale.ProductID(), sale.CustomerID(), sale.PartnerID(), sale.CreatedAt(),
	).Scan(&id, &value, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	return entity.NewSale(entity.SaleParams{
		ID:         id,
		Value:      value,
		ProductID:  sale.ProductID(),
		CustomerID: sale.CustomerID(),
		PartnerID:  sale.PartnerID(),
		CreatedAt:  createdAt,
		Product:    sale.Product(),
		Customer:   sale.Customer(),
		Partner:    sale.Partner(),
	})
}

// FindAll lista ventas con relaciones, más recientes primero.
func (r *SaleRepo) FindAll(ctx context.Context, skip, take int) ([]*entity.Sale, error) {
	return querySales(ctx, r.q, persistence.SaleSelect+persistence.SaleOrder+` LIMIT $1 OFFSET $2`, take, skip)
}

// FindByID obtiene una venta con relaciones; (nil, nil) si no existe.
func (r *SaleRepo) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var row persistence.SaleRow
	err := r.q.QueryRow(ctx, persistence.SaleSelect+` WHERE s.id = $1`, id).Scan(row.Dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return row.ToEntity()
}

// FindByPartner devuelve todas las ventas de un partner.
func (r *SaleRepo) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Sale, error) {
	return querySales(ctx, r.q, persistence.SaleSelect+` WHERE s.partner_id = $1`+persistence.SaleOrder, partnerID)
}

// Count total de ventas.
func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

func querySales(ctx context.Context, q Querier, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := q.Query(ctx, query, args...)
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
