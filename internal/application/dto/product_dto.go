package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Active ausente equivale a true.
type CreateProductRequest struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active *bool           `json:"active,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewProductResponse proyecta la entidad.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Active:    p.Active(),
		CreatedAt: p.CreatedAt(),
	}
}
