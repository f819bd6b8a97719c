package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, email string) (User, error)
}

// User represents a stored user. Email is the external identifier.
type User struct {
	ID    int64
	Email string
}
