package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las lecturas adjuntan los snapshots de producto, cliente y partner cuando existen.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)
	FindAll(ctx context.Context, skip, take int) ([]*entity.Sale, error)
	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
	FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Sale, error)
	Count(ctx context.Context) (int, error)
}
