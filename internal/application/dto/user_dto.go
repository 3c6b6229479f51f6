package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // ADMIN | PARTNER | CUSTOMER
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse proyecta la entidad.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
