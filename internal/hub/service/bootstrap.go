package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/idx"
)

var (
	ErrAlreadyBootstrapped  = errors.New("an admin account already exists")
	ErrBadBootstrapToken    = errors.New("invalid bootstrap token")
	ErrBootstrapUnavailable = errors.New("bootstrap is disabled")
)

// BootstrapService creates the first admin account. It only works while the
// admins collection is empty, so a deployed instance cannot be re-seeded.
type BootstrapService struct {
	Store store.Store

	// Token guards the endpoint. Empty disables bootstrap entirely.
	Token string
}

type BootstrapInput struct {
	Token    string
	Name     string
	LastName string
	Email    string
	Password string
}

func (s *BootstrapService) Bootstrap(ctx context.Context, in BootstrapInput) (domain.Admin, error) {
	if s.Token == "" {
		return domain.Admin{}, ErrBootstrapUnavailable
	}
	if subtle.ConstantTimeCompare([]byte(in.Token), []byte(s.Token)) != 1 {
		return domain.Admin{}, ErrBadBootstrapToken
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         in.Name,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}

	// Emptiness check and insert share a transaction so two concurrent
	// bootstrap calls cannot both seed an admin.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Admins().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("failed to check admins: %w", err)
		}
		if !empty {
			return ErrAlreadyBootstrapped
		}
		return tx.Admins().CreateAdmin(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyBootstrapped) {
			return domain.Admin{}, ErrAlreadyBootstrapped
		}
		return domain.Admin{}, fmt.Errorf("bootstrap failed: %w", err)
	}

	return admin, nil
}
