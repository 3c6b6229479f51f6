package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida el producto con la entidad y luego lo persiste. Active ausente = true.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	product, err := entity.NewProduct(0, in.Name, in.Price, active, time.Now())
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, product)
}

// FindAll lista productos paginados.
func (uc *ProductUseCase) FindAll(ctx context.Context, page, limit int) (*dto.Paginated[*entity.Product], error) {
	return paginate(ctx, page, limit, uc.repo.FindAll, uc.repo.Count)
}

// FindByID obtiene un producto o devuelve ErrNotFound.
func (uc *ProductUseCase) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("producto con ID %d no encontrado", id)
	}
	return product, nil
}
