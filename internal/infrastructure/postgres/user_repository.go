package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, role, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Email duplicado -> domain.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	out, err := scanUser(r.q.QueryRow(ctx, query,
		user.Name(), user.Email(), user.Role().String(), user.CreatedAt(),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("el email %s ya está registrado", user.Email())
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return out, nil
}

// FindAll lista usuarios, opcionalmente filtrados por rol.
func (r *UserRepo) FindAll(ctx context.Context, skip, take int, role *entity.Role) ([]*entity.User, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if role != nil {
		rows, err = r.q.Query(ctx,
			`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
			role.String(), take, skip)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
			take, skip)
	}
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Count total de usuarios, opcionalmente por rol.
func (r *UserRepo) Count(ctx context.Context, role *entity.Role) (int, error) {
	var (
		n   int
		err error
	)
	if role != nil {
		err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role.String()).Scan(&n)
	} else {
		err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(s scanner) (*entity.User, error) {
	var (
		id        int64
		name      string
		email     string
		role      string
		createdAt time.Time
	)
	if err := s.Scan(&id, &name, &email, &role, &createdAt); err != nil {
		return nil, err
	}
	return entity.NewUser(id, name, email, entity.Role(role), createdAt)
}
