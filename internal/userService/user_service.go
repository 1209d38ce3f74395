package user

import (
	"context"
	"fmt"

	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/internal/shareiterrors"
)

// UserService defines the business logic for user accounts
type UserService struct {
	repo repository.UserDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.UserDB) *UserService {
	return &UserService{repo: repo}
}

// CreateUser registers a new user, enforcing email uniqueness
func (s *UserService) CreateUser(ctx context.Context, name, email string) (models.User, error) {
	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to check email %s: %w", email, err)
	}
	if taken {
		return models.User{}, fmt.Errorf("service: %w - %s", shareiterrors.ErrEmailTaken, email)
	}

	created, err := s.repo.CreateUser(ctx, models.User{Name: name, Email: email})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return created, nil
}

// GetUserByID returns a single user
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	return u, nil
}

// GetAllUsers returns every registered user
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update; nil fields keep the stored value.
// A changed email is re-checked for uniqueness.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, name, email *string) (models.User, error) {
	existing, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}

	if email != nil && *email != existing.Email {
		taken, err := s.repo.EmailExists(ctx, *email)
		if err != nil {
			return models.User{}, fmt.Errorf("service: failed to check email %s: %w", *email, err)
		}
		if taken {
			return models.User{}, fmt.Errorf("service: %w - %s", shareiterrors.ErrEmailTaken, *email)
		}
		existing.Email = *email
	}
	if name != nil {
		existing.Name = *name
	}

	updated, err := s.repo.UpdateUser(ctx, existing)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %d: %w", userID, err)
	}
	return updated, nil
}

// DeleteUser removes a user by id
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to delete user %d: %w", userID, err)
	}
	return nil
}
