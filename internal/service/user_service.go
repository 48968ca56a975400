package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/storage"
)

// UserService implements user CRUD on top of a storage.Store.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// List returns all users sorted by name.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Create validates the request and persists a new user.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// Update validates the request and updates an existing user in place.
func (s *UserService) Update(ctx context.Context, req UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := &models.User{ID: req.ID, Name: req.Name, Email: req.Email}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user updated", "user_id", user.ID)
	return user, nil
}

// Delete removes a user by ID. Users referenced by debts cannot be deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("User ID is required")
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}

	slog.Info("user deleted", "user_id", id)
	return nil
}
