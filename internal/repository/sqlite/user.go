package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// GetByEmail returns the user registered under email, matched exactly.
func (u *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := u.store.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT id, email FROM users WHERE email = ?`, email,
		).Scan(&user.ID, &user.Email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// GetByID returns one user by primary key.
func (u *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	err := u.store.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT id, email FROM users WHERE id = ?`, id,
		).Scan(&user.ID, &user.Email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// Create inserts a user row.
func (u *UserStore) Create(ctx context.Context, email string) (model.User, error) {
	var id int64
	err := u.store.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `INSERT INTO users (email) VALUES (?)`, email)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return model.User{ID: id, Email: email}, nil
}
