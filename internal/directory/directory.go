package directory

import (
	"fmt"
	"strings"

	"bidding-marketplace/internal/markerrors"
	"bidding-marketplace/internal/models"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/utils"
)

// UserUpdate carries the mutable user fields; nil means keep.
type UserUpdate struct {
	Name  *string
	Email *string
}

// Service is the read-mostly user directory consumed by bid enrichment.
type Service struct {
	users repository.UserStore
}

// NewService creates a new directory Service instance
func NewService(users repository.UserStore) *Service {
	return &Service{users: users}
}

// List returns all users in creation order.
func (s *Service) List() ([]models.User, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("directory: failed to list users: %w", err)
	}
	return users, nil
}

// Get returns one user by id.
func (s *Service) Get(id int64) (models.User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		return models.User{}, fmt.Errorf("directory: failed to load user %d: %w", id, err)
	}
	return user, nil
}

// Create registers a new user.
func (s *Service) Create(name, email string) (models.User, error) {
	if strings.TrimSpace(name) == "" {
		return models.User{}, fmt.Errorf("directory: %w - missing user name", markerrors.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return models.User{}, fmt.Errorf("directory: %w - missing email", markerrors.ErrValidation)
	}

	user := models.User{
		ID:    utils.NextID(),
		Name:  name,
		Email: email,
	}
	if err := s.users.AddUser(user); err != nil {
		return models.User{}, fmt.Errorf("directory: failed to create user: %w", err)
	}
	return user, nil
}

// Update applies the set fields of upd to a user profile.
func (s *Service) Update(id int64, upd UserUpdate) (models.User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		return models.User{}, fmt.Errorf("directory: failed to load user %d: %w", id, err)
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return models.User{}, fmt.Errorf("directory: %w - empty user name", markerrors.ErrValidation)
		}
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		if strings.TrimSpace(*upd.Email) == "" {
			return models.User{}, fmt.Errorf("directory: %w - empty email", markerrors.ErrValidation)
		}
		user.Email = *upd.Email
	}

	if err := s.users.ReplaceUser(user); err != nil {
		return models.User{}, fmt.Errorf("directory: failed to update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes a user and returns the deleted record.
func (s *Service) Delete(id int64) (models.User, error) {
	deleted, err := s.users.DeleteUser(id)
	if err != nil {
		return models.User{}, fmt.Errorf("directory: failed to delete user %d: %w", id, err)
	}
	return deleted, nil
}
