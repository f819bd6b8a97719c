package service

import (
	"context"
	"errors"
	"fmt"

	apiErrors "github.com/dtroode/tasktracker-server/internal/api/errors"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// Register returns the user registered under email, creating it on first
// use. Repeated calls with the same email return the same user.
func (s *User) Register(ctx context.Context, email string) (model.User, error) {
	s.logger.Debug("User service: registering user", "email", email)

	if email == "" {
		return model.User{}, apiErrors.NewErrEmailRequired()
	}

	existing, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("User service: user already exists",
			"user_id", existing.ID,
			"email", email)
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("User service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	created, err := s.userStore.Create(ctx, email)
	if errors.Is(err, model.ErrAlreadyExists) {
		// A concurrent registration won the insert.
		existing, err = s.userStore.GetByEmail(ctx, email)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to get user after conflict: %w", err)
		}
		return existing, nil
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID,
		"email", email)
	return created, nil
}

// FindByEmail resolves an identity to a registered user.
func (s *User) FindByEmail(ctx context.Context, email string) (model.User, error) {
	if email == "" {
		return model.User{}, apiErrors.NewErrUserEmailRequired()
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
