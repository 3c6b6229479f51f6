package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, role, created_at`

// UserRepo implementación de UserRepository sobre SQLite.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create inserta el usuario. Email duplicado -> domain.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	createdAt := user.CreatedAt().UTC()
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (name, email, role, created_at) VALUES (?, ?, ?, ?)`,
		user.Name(), user.Email(), user.Role().String(), createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("el email %s ya está registrado", user.Email())
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return entity.NewUser(id, user.Name(), user.Email(), user.Role(), createdAt)
}

func (r *UserRepo) FindAll(ctx context.Context, skip, take int, role *entity.Role) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if role != nil {
		query += ` WHERE role = ?`
		args = append(args, role.String())
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, take, skip)

	rows, err := r.q.QueryContext(ctx, query, args...)
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

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) Count(ctx context.Context, role *entity.Role) (int, error) {
	var (
		n   int
		err error
	)
	if role != nil {
		err = r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, role.String()).Scan(&n)
	} else {
		err = r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
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
