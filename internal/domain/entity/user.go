package entity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// Role rol de un usuario del marketplace.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "ADMIN"
	RolePartner  Role = "PARTNER"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole convierte texto (sin distinguir mayúsculas) en un Role válido.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", &domain.Error{Kind: domain.ErrInvalidRole, Message: "el rol debe ser ADMIN, PARTNER o CUSTOMER"}
	}
	return r, nil
}

// Valid indica si el rol pertenece al enum.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePartner, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User representa un usuario del sistema. El rol no cambia después de construido;
// las entidades se reconstruyen desde la persistencia en cada lectura.
type User struct {
	id        int64
	name      string
	email     string
	role      Role
	createdAt time.Time
}

// NewUser construye un User validado. id=0 indica que aún no fue persistido.
func NewUser(id int64, name, email string, role Role, createdAt time.Time) (*User, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return nil, domain.NewValidationError("el nombre del usuario es obligatorio")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("el email es obligatorio")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domain.NewValidationError("email inválido: %q", email)
	}
	if !role.Valid() {
		return nil, &domain.Error{Kind: domain.ErrInvalidRole, Message: "el rol debe ser ADMIN, PARTNER o CUSTOMER"}
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &User{id: id, name: name, email: email, role: role, createdAt: createdAt}, nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) IsAdmin() bool    { return u.role == RoleAdmin }
func (u *User) IsPartner() bool  { return u.role == RolePartner }
func (u *User) IsCustomer() bool { return u.role == RoleCustomer }
