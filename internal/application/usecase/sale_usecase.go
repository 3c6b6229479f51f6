package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// SaleUseCase registra y consulta ventas.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, userRepo: userRepo, productRepo: productRepo}
}

// Create registra una venta. El orden de verificación es fijo (producto → cliente → partner)
// y la venta solo se persiste cuando las tres pasan.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	product, err := uc.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("producto con ID %d no encontrado", in.ProductID)
	}
	if !product.IsAvailableForSale() {
		return nil, &domain.Error{Kind: domain.ErrProductUnavailable, Message: "el producto no está disponible para la venta"}
	}

	customer, err := uc.userRepo.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("cliente con ID %d no encontrado", in.CustomerID)
	}
	if !customer.IsCustomer() {
		return nil, domain.NewValidationError("customerId debe ser un usuario con rol CUSTOMER")
	}

	partner, err := uc.userRepo.FindByID(ctx, in.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.NewNotFoundError("partner con ID %d no encontrado", in.PartnerID)
	}
	if !partner.IsPartner() {
		return nil, domain.NewValidationError("partnerId debe ser un usuario con rol PARTNER")
	}

	sale, err := entity.NewSale(entity.SaleParams{
		Value:      in.Value,
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		PartnerID:  in.PartnerID,
		CreatedAt:  time.Now(),
		Product:    product,
		Customer:   customer,
		Partner:    partner,
	})
	if err != nil {
		return nil, err
	}
	return uc.saleRepo.Create(ctx, sale)
}

// FindAll lista ventas paginadas con sus relaciones.
func (uc *SaleUseCase) FindAll(ctx context.Context, page, limit int) (*dto.Paginated[*entity.Sale], error) {
	return paginate(ctx, page, limit, uc.saleRepo.FindAll, uc.saleRepo.Count)
}

// FindByID obtiene una venta o devuelve ErrNotFound.
func (uc *SaleUseCase) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFoundError("venta con ID %d no encontrada", id)
	}
	return sale, nil
}
