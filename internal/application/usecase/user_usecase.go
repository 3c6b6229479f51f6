package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. Devuelve ErrConflict si el email ya está registrado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	user, err := entity.NewUser(0, in.Name, in.Email, role, time.Now())
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByEmail(ctx, user.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("el email %s ya está registrado", user.Email())
	}
	return uc.repo.Create(ctx, user)
}

// FindAll lista usuarios paginados; role nil = todos los roles.
func (uc *UserUseCase) FindAll(ctx context.Context, page, limit int, role *entity.Role) (*dto.Paginated[*entity.User], error) {
	if role != nil && !role.Valid() {
		return nil, &domain.Error{Kind: domain.ErrInvalidRole, Message: "el rol debe ser ADMIN, PARTNER o CUSTOMER"}
	}
	fetch := func(ctx context.Context, skip, take int) ([]*entity.User, error) {
		return uc.repo.FindAll(ctx, skip, take, role)
	}
	count := func(ctx context.Context) (int, error) {
		return uc.repo.Count(ctx, role)
	}
	return paginate(ctx, page, limit, fetch, count)
}

// FindByID obtiene un usuario o devuelve ErrNotFound.
func (uc *UserUseCase) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("usuario con ID %d no encontrado", id)
	}
	return user, nil
}
