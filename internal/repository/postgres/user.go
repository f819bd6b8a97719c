package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email FROM users WHERE email = $1`

	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, email FROM users WHERE id = $1`

	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, email string) (model.User, error) {
	query := `INSERT INTO users (email) VALUES ($1) RETURNING id, email`

	var savedUser model.User
	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, email).Scan(&savedUser.ID, &savedUser.Email)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
