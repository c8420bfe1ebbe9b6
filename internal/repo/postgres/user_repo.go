package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
	"github.com/Ihebmsaed/Artygen/internal/domain/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	if r.pool == nil {
		return model.User{}, fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(user.Email) == "" {
		return model.User{}, fmt.Errorf("email is required")
	}
	if user.Role == "" {
		user.Role = enums.RoleUser
	}

	// The empty profile row is seeded in the same transaction so every
	// account always has one.
	err := WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
INSERT INTO users (username, email, first_name, last_name, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING id, created_at
`, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Role).
			Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO profiles (user_id, updated_at)
VALUES ($1, NOW())
ON CONFLICT (user_id) DO NOTHING
`, user.ID); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	if r.pool == nil {
		return model.User{}, fmt.Errorf("postgres pool is nil")
	}

	var user model.User
	err := r.pool.QueryRow(ctx, `
SELECT id, username, email, first_name, last_name, password_hash, role, created_at
FROM users
WHERE email = $1
`, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName,
		&user.LastName, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("find user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	if r.pool == nil {
		return model.User{}, fmt.Errorf("postgres pool is nil")
	}
	if id <= 0 {
		return model.User{}, fmt.Errorf("invalid user id")
	}

	var user model.User
	err := r.pool.QueryRow(ctx, `
SELECT id, username, email, first_name, last_name, password_hash, role, created_at
FROM users
WHERE id = $1
`, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName,
		&user.LastName, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}
