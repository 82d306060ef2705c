// Package app contains the application services sitting between the REST
// handlers and the repositories/connectors.
package app

import (
	"context"

	"user_file_service/internal/domain/users"
	"user_file_service/internal/pkg/logger"
)

// userService implements the users.UserService interface
type userService struct {
	userRepository users.UserRepository
	logger         logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepository users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

// Create persists a new user and returns it with the generated id. Email
// uniqueness is left to the store; a duplicate surfaces as a repository error.
func (s *userService) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by id.
func (s *userService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

// Update replaces a user's name and email after checking the user exists.
// The check and the update are two round trips; a concurrent delete in
// between turns the update into a no-op on zero rows.
func (s *userService) Update(ctx context.Context, user *users.User) error {
	if _, err := s.userRepository.GetByID(ctx, user.ID); err != nil {
		return err
	}

	return s.userRepository.UpdateByID(ctx, user)
}

// DeleteByID removes a user after checking the user exists. Same check-then-act
// window as Update.
func (s *userService) DeleteByID(ctx context.Context, id uint) error {
	if _, err := s.userRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.userRepository.DeleteByID(ctx, id)
}

// List retrieves all users.
func (s *userService) List(ctx context.Context) ([]*users.User, error) {
	return s.userRepository.List(ctx)
}
