package postgres

import (
	"context"
	"errors"
	"fmt"
	"fxledger/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `select exists(select 1 from users where username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user %q: %w", username, err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx, `insert into users (username) values ($1)`, username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to insert user %q: %w", username, err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `select username from users order by username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]string, 0, 16)
	for rows.Next() {
		var u string
		if err = rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}
