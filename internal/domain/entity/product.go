package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

const (
	minProductNameLen = 3
	// moneyScale decimales admitidos en precios y valores.
	moneyScale = 2
)

// validateMoneyScale rechaza montos con más de dos decimales significativos.
func validateMoneyScale(field string, d decimal.Decimal) error {
	if !d.Round(moneyScale).Equal(d) {
		return domain.NewValidationError("%s admite como máximo %d decimales: %s", field, moneyScale, d.String())
	}
	return nil
}

// Product representa un producto ofrecido en el marketplace.
// Solo se modifica a través de sus propios métodos.
type Product struct {
	id        int64
	name      string
	price     decimal.Decimal
	active    bool
	createdAt time.Time
}

// NewProduct construye un Product validado: nombre con al menos 3 caracteres (sin espacios
// en los extremos) y precio no negativo con hasta dos decimales.
func NewProduct(id int64, name string, price decimal.Decimal, active bool, createdAt time.Time) (*Product, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if utf8.RuneCountInString(name) < minProductNameLen {
		return nil, domain.NewValidationError("el nombre del producto debe tener al menos %d caracteres", minProductNameLen)
	}
	if price.IsNegative() {
		return nil, domain.NewValidationError("el precio no puede ser negativo")
	}
	if err := validateMoneyScale("el precio", price); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Product{id: id, name: name, price: price, active: active, createdAt: createdAt}, nil
}

func (p *Product) ID() int64              { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Active() bool           { return p.active }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }

// Activate marca el producto como activo.
func (p *Product) Activate() { p.active = true }

// Deactivate retira el producto de la venta.
func (p *Product) Deactivate() { p.active = false }

// IsAvailableForSale exige producto activo y precio mayor que cero.
func (p *Product) IsAvailableForSale() bool {
	return p.active && p.price.IsPositive()
}

// UpdatePrice reemplaza el precio; rechaza valores negativos o con más de dos decimales.
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.NewValidationError("el precio no puede ser negativo")
	}
	if err := validateMoneyScale("el precio", price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// CalculateCommission devuelve price × rate, con rate en [0,1].
func (p *Product) CalculateCommission(rate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateCommissionRate(rate); err != nil {
		return decimal.Zero, err
	}
	return p.price.Mul(rate), nil
}

func validateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return &domain.Error{Kind: domain.ErrInvalidCommissionRate, Message: "la tasa de comisión debe estar entre 0 y 1"}
	}
	return nil
}
