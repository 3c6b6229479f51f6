package usecase

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PartnerUseCase calcula las comisiones de un partner con la tasa fija entity.CommissionRate.
type PartnerUseCase struct {
	userRepo repository.UserRepository
	saleRepo repository.SaleRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(userRepo repository.UserRepository, saleRepo repository.SaleRepository) *PartnerUseCase {
	return &PartnerUseCase{userRepo: userRepo, saleRepo: saleRepo}
}

// GetCommissions devuelve totales de ventas y comisión. Sin ventas, todos los totales son cero.
func (uc *PartnerUseCase) GetCommissions(ctx context.Context, partnerID int64) (*dto.CommissionResponse, error) {
	partner, err := uc.userRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.NewNotFoundError("partner con ID %d no encontrado", partnerID)
	}
	if !partner.IsPartner() {
		return nil, domain.NewValidationError("el usuario %d no es un partner", partnerID)
	}

	sales, err := uc.saleRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	for _, s := range sales {
		totalValue = totalValue.Add(s.Value())
	}

	return &dto.CommissionResponse{
		PartnerID:       partner.ID(),
		PartnerName:     partner.Name(),
		TotalSales:      len(sales),
		TotalValue:      totalValue,
		CommissionRate:  entity.CommissionRate,
		TotalCommission: totalValue.Mul(entity.CommissionRate),
	}, nil
}
