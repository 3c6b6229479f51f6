package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name    string
		pName   string
		price   string
		wantErr bool
	}{
		{"válido", "Curso de Go", "299.90", false},
		{"precio cero permitido", "Gratis", "0", false},
		{"nombre corto", "Go", "10", true},
		{"nombre corto tras recortar", "  ab  ", "10", true},
		{"precio negativo", "Curso", "-1", true},
		{"tres runas multibyte", "ñáé", "1", false},
		{"más de dos decimales", "Curso", "1.234", true},
		{"ceros finales no cuentan", "Curso", "10.000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := entity.NewProduct(0, tt.pName, decimal.RequireFromString(tt.price), true, time.Time{})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.False(t, p.CreatedAt().IsZero())
		})
	}
}

func TestNewProduct_TrimsName(t *testing.T) {
	p, err := entity.NewProduct(1, "  Mentoria  ", decimal.NewFromInt(10), true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Mentoria", p.Name())
}

func TestProduct_IsAvailableForSale(t *testing.T) {
	p, err := entity.NewProduct(1, "Curso", decimal.NewFromInt(100), true, time.Now())
	require.NoError(t, err)
	assert.True(t, p.IsAvailableForSale())

	p.Deactivate()
	assert.False(t, p.IsAvailableForSale())
	p.Activate()
	assert.True(t, p.IsAvailableForSale())

	require.NoError(t, p.UpdatePrice(decimal.Zero))
	assert.False(t, p.IsAvailableForSale(), "precio cero no se vende")

	err = p.UpdatePrice(decimal.NewFromInt(-5))
	assert.True(t, domain.IsValidation(err))
	assert.True(t, p.Price().IsZero(), "el precio no cambia si la actualización falla")
}

func TestProduct_UpdatePriceRejectsSubCent(t *testing.T) {
	p, err := entity.NewProduct(1, "Curso", decimal.NewFromInt(100), true, time.Now())
	require.NoError(t, err)

	err = p.UpdatePrice(decimal.RequireFromString("99.999"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.True(t, decimal.NewFromInt(100).Equal(p.Price()))

	require.NoError(t, p.UpdatePrice(decimal.RequireFromString("99.90")))
}

func TestProduct_CalculateCommission(t *testing.T) {
	p, err := entity.NewProduct(1, "Curso", decimal.NewFromInt(200), true, time.Now())
	require.NoError(t, err)

	c, err := p.CalculateCommission(decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(c))

	for _, rate := range []string{"-0.01", "1.01"} {
		_, err := p.CalculateCommission(decimal.RequireFromString(rate))
		assert.ErrorIs(t, err, domain.ErrInvalidCommissionRate, rate)
	}

	c, err = p.CalculateCommission(decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, p.Price().Equal(c))
}
