package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/idx"
)

var ErrInvalidRole = errors.New("invalid role")

type UserService struct {
	Store store.Store
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// RegisterUser creates a general account in the users collection. The role
// is recorded on the row but admin, alumni and faculty accounts created via
// their dedicated endpoints always win credential resolution over it.
func (s *UserService) RegisterUser(ctx context.Context, in RegisterUserInput) (domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleStudent
	}
	if !domain.ValidRole(in.Role) {
		return domain.User{}, ErrInvalidRole
	}

	if _, err := s.Store.Users().FindByEmail(ctx, in.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
