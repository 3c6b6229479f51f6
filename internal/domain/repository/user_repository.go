package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// role == nil significa "todos los roles".
type UserRepository interface {
	// Create persiste el usuario. Un email repetido devuelve domain.ErrConflict.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindAll(ctx context.Context, skip, take int, role *entity.Role) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context, role *entity.Role) (int, error)
}
