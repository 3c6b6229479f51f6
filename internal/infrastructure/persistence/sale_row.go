// Package persistence contiene piezas compartidas por los adaptadores SQL
// (PostgreSQL y SQLite): la proyección de ventas con sus relaciones y su rehidratación.
package persistence

import (
	"fmt"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleSelect proyección de una venta con producto, cliente y partner (LEFT JOIN: una
// relación ausente llega como NULL). El orden de columnas coincide con SaleRow.Dest.
const SaleSelect = `
	SELECT s.id, s.value, s.product_id, s.customer_id, s.partner_id, s.created_at,
	       p.id, p.name, p.price, p.active, p.created_at,
	       c.id, c.name, c.email, c.role, c.created_at,
	       pa.id, pa.name, pa.email, pa.role, pa.created_at
	FROM sales s
	LEFT JOIN products p  ON p.id  = s.product_id
	LEFT JOIN users    c  ON c.id  = s.customer_id
	LEFT JOIN users    pa ON pa.id = s.partner_id`

// SaleOrder orden de listados: más reciente primero.
const SaleOrder = ` ORDER BY s.created_at DESC, s.id DESC`

// SaleRow fila cruda de SaleSelect.
type SaleRow struct {
	ID         int64
	Value      decimal.Decimal
	ProductID  int64
	CustomerID int64
	PartnerID  int64
	CreatedAt  time.Time

	Product  productCols
	Customer userCols
	Partner  userCols
}

type productCols struct {
	ID        *int64
	Name      *string
	Price     *decimal.Decimal
	Active    *bool
	CreatedAt *time.Time
}

type userCols struct {
	ID        *int64
	Name      *string
	Email     *string
	Role      *string
	CreatedAt *time.Time
}

// Dest devuelve los destinos de Scan en el orden de SaleSelect.
func (r *SaleRow) Dest() []any {
	return []any{
		&r.ID, &r.Value, &r.ProductID, &r.CustomerID, &r.PartnerID, &r.CreatedAt,
		&r.Product.ID, &r.Product.Name, &r.Product.Price, &r.Product.Active, &r.Product.CreatedAt,
		&r.Customer.ID, &r.Customer.Name, &r.Customer.Email, &r.Customer.Role, &r.Customer.CreatedAt,
		&r.Partner.ID, &r.Partner.Name, &r.Partner.Email, &r.Partner.Role, &r.Partner.CreatedAt,
	}
}

// ToEntity reconstruye la venta adjuntando las relaciones presentes.
func (r *SaleRow) ToEntity() (*entity.Sale, error) {
	params := entity.SaleParams{
		ID:         r.ID,
		Value:      r.Value,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		PartnerID:  r.PartnerID,
		CreatedAt:  r.CreatedAt,
	}
	var err error
	if params.Product, err = r.Product.toEntity(); err != nil {
		return nil, fmt.Errorf("venta %d: producto: %w", r.ID, err)
	}
	if params.Customer, err = r.Customer.toEntity(); err != nil {
		return nil, fmt.Errorf("venta %d: cliente: %w", r.ID, err)
	}
	if params.Partner, err = r.Partner.toEntity(); err != nil {
		return nil, fmt.Errorf("venta %d: partner: %w", r.ID, err)
	}
	return entity.NewSale(params)
}

func (c productCols) toEntity() (*entity.Product, error) {
	if c.ID == nil {
		return nil, nil
	}
	return entity.NewProduct(*c.ID, deref(c.Name), derefDecimal(c.Price), c.Active != nil && *c.Active, derefTime(c.CreatedAt))
}

func (c userCols) toEntity() (*entity.User, error) {
	if c.ID == nil {
		return nil, nil
	}
	return entity.NewUser(*c.ID, deref(c.Name), deref(c.Email), entity.Role(deref(c.Role)), derefTime(c.CreatedAt))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
