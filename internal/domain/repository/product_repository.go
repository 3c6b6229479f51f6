package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// FindByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	// Create persiste el producto y devuelve la entidad con ID y fecha asignados.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	FindAll(ctx context.Context, skip, take int) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Count(ctx context.Context) (int, error)
}
