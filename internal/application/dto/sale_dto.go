package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ProductID  int64           `json:"productId"`
	CustomerID int64           `json:"customerId"`
	PartnerID  int64           `json:"partnerId"`
	Value      decimal.Decimal `json:"value"`
}

// RefResponse referencia {id, name} a una entidad relacionada.
type RefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SaleResponse salida de una venta; las relaciones solo aparecen si fueron cargadas.
type SaleResponse struct {
	ID         int64           `json:"id"`
	Value      decimal.Decimal `json:"value"`
	ProductID  int64           `json:"productId"`
	CustomerID int64           `json:"customerId"`
	PartnerID  int64           `json:"partnerId"`
	CreatedAt  time.Time       `json:"createdAt"`
	Product    *RefResponse    `json:"product,omitempty"`
	Customer   *RefResponse    `json:"customer,omitempty"`
	Partner    *RefResponse    `json:"partner,omitempty"`
}

// NewSaleResponse proyecta la entidad.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	out := SaleResponse{
		ID:         s.ID(),
		Value:      s.Value(),
		ProductID:  s.ProductID(),
		CustomerID: s.CustomerID(),
		PartnerID:  s.PartnerID(),
		CreatedAt:  s.CreatedAt(),
	}
	if p := s.Product(); p != nil {
		out.Product = &RefResponse{ID: p.ID(), Name: p.Name()}
	}
	if c := s.Customer(); c != nil {
		out.Customer = &RefResponse{ID: c.ID(), Name: c.Name()}
	}
	if p := s.Partner(); p != nil {
		out.Partner = &RefResponse{ID: p.ID(), Name: p.Name()}
	}
	return out
}
