package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
)

func TestSaleUseCase_Create(t *testing.T) {
	ctx := context.Background()
	valid := dto.CreateSaleRequest{ProductID: 1, CustomerID: 3, PartnerID: 2, Value: decimal.NewFromInt(100)}

	tests := []struct {
		name      string
		mutate    func(*dto.CreateSaleRequest)
		wantErr   error
		wantCalls []string
	}{
		{
			name:      "producto inexistente antes de consultar usuarios",
			mutate:    func(r *dto.CreateSaleRequest) { r.ProductID = 99; r.CustomerID = 98 },
			wantErr:   domain.ErrNotFound,
			wantCalls: []string{"products.FindByID"},
		},
		{
			name:      "producto inactivo",
			mutate:    func(r *dto.CreateSaleRequest) { r.ProductID = 2 },
			wantErr:   domain.ErrProductUnavailable,
			wantCalls: []string{"products.FindByID"},
		},
		{
			name:      "cliente inexistente",
			mutate:    func(r *dto.CreateSaleRequest) { r.CustomerID = 99 },
			wantErr:   domain.ErrNotFound,
			wantCalls: []string{"products.FindByID", "users.FindByID"},
		},
		{
			name:      "cliente con rol partner",
			mutate:    func(r *dto.CreateSaleRequest) { r.CustomerID = 2 },
			wantErr:   domain.ErrValidation,
			wantCalls: []string{"products.FindByID", "users.FindByID"},
		},
		{
			name:      "partner inexistente",
			mutate:    func(r *dto.CreateSaleRequest) { r.PartnerID = 99 },
			wantErr:   domain.ErrNotFound,
			wantCalls: []string{"products.FindByID", "users.FindByID", "users.FindByID"},
		},
		{
			name:      "partner con rol admin",
			mutate:    func(r *dto.CreateSaleRequest) { r.PartnerID = 1 },
			wantErr:   domain.ErrValidation,
			wantCalls: []string{"products.FindByID", "users.FindByID", "users.FindByID"},
		},
		{
			name:      "valor cero no persiste",
			mutate:    func(r *dto.CreateSaleRequest) { r.Value = decimal.Zero },
			wantErr:   domain.ErrValidation,
			wantCalls: []string{"products.FindByID", "users.FindByID", "users.FindByID"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewSaleUseCase(f.sales, f.users, f.products)
			in := valid
			tt.mutate(&in)

			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, f.log.list())
			assert.Empty(t, f.sales.sales)
		})
	}
}

func TestSaleUseCase_Create_OK(t *testing.T) {
	f := newFixture()
	uc := NewSaleUseCase(f.sales, f.users, f.products)

	sale, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: 1, CustomerID: 3, PartnerID: 2, Value: decimal.RequireFromString("80.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sale.ID())
	assert.True(t, decimal.RequireFromString("80.50").Equal(sale.Value()))
	require.NotNil(t, sale.Product())
	assert.Equal(t, "Curso de Go", sale.Product().Name())
	assert.Equal(t, "Partner", sale.Partner().Name())
	assert.Equal(t, []string{"products.FindByID", "users.FindByID", "users.FindByID", "sales.Create"}, f.log.list())
}

func TestSaleUseCase_FindByID(t *testing.T) {
	f := newFixture()
	uc := NewSaleUseCase(f.sales, f.users, f.products)

	_, err := uc.FindByID(context.Background(), 1)
	assert.True(t, domain.IsNotFound(err))
}
