package entity

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CommissionRate fracción fija del valor de la venta que corresponde al partner (10%).
var CommissionRate = decimal.New(1, -1)

// SaleParams datos para construir una Sale. Product, Customer y Partner son snapshots
// opcionales que solo se adjuntan en lecturas expandidas.
type SaleParams struct {
	ID         int64
	Value      decimal.Decimal
	ProductID  int64
	CustomerID int64
	PartnerID  int64
	CreatedAt  time.Time

	Product  *Product
	Customer *User
	Partner  *User
}

// Sale representa una venta de un producto a un cliente, intermediada por un partner.
// Es inmutable: una corrección implica crear otra Sale.
type Sale struct {
	id         int64
	value      decimal.Decimal
	productID  int64
	customerID int64
	partnerID  int64
	createdAt  time.Time

	product  *Product
	customer *User
	partner  *User
}

// NewSale construye una Sale validada. Las relaciones ausentes no agregan restricciones.
func NewSale(p SaleParams) (*Sale, error) {
	if !p.Value.IsPositive() {
		return nil, domain.NewValidationError("el valor de la venta debe ser mayor que cero")
	}
	if err := validateMoneyScale("el valor de la venta", p.Value); err != nil {
		return nil, err
	}
	if p.ProductID <= 0 {
		return nil, domain.NewValidationError("ID de producto inválido: %d", p.ProductID)
	}
	if p.CustomerID <= 0 {
		return nil, domain.NewValidationError("ID de cliente inválido: %d", p.CustomerID)
	}
	if p.PartnerID <= 0 {
		return nil, domain.NewValidationError("ID de partner inválido: %d", p.PartnerID)
	}
	if p.Customer != nil && !p.Customer.IsCustomer() {
		return nil, domain.NewValidationError("el usuario %d debe tener rol CUSTOMER", p.Customer.ID())
	}
	if p.Partner != nil && !p.Partner.IsPartner() {
		return nil, domain.NewValidationError("el usuario %d debe tener rol PARTNER", p.Partner.ID())
	}
	if p.Product != nil && !p.Product.IsAvailableForSale() {
		return nil, &domain.Error{Kind: domain.ErrProductUnavailable, Message: "el producto no está disponible para la venta"}
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Sale{
		id:         p.ID,
		value:      p.Value,
		productID:  p.ProductID,
		customerID: p.CustomerID,
		partnerID:  p.PartnerID,
		createdAt:  createdAt,
		product:    p.Product,
		customer:   p.Customer,
		partner:    p.Partner,
	}, nil
}

func (s *Sale) ID() int64              { return s.id }
func (s *Sale) Value() decimal.Decimal { return s.value }
func (s *Sale) ProductID() int64       { return s.productID }
func (s *Sale) CustomerID() int64      { return s.customerID }
func (s *Sale) PartnerID() int64       { return s.partnerID }
func (s *Sale) CreatedAt() time.Time   { return s.createdAt }

// Product, Customer y Partner devuelven nil cuando la relación no fue cargada.
func (s *Sale) Product() *Product { return s.product }
func (s *Sale) Customer() *User   { return s.customer }
func (s *Sale) Partner() *User    { return s.partner }

// IsValidSale repite las reglas escalares de construcción.
func (s *Sale) IsValidSale() bool {
	return s.value.IsPositive() && s.productID > 0 && s.customerID > 0 && s.partnerID > 0
}

// CalculateCommission devuelve value × rate, con rate en [0,1].
func (s *Sale) CalculateCommission(rate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateCommissionRate(rate); err != nil {
		return decimal.Zero, err
	}
	return s.value.Mul(rate), nil
}

// DefaultCommission aplica CommissionRate.
func (s *Sale) DefaultCommission() decimal.Decimal {
	return s.value.Mul(CommissionRate)
}
