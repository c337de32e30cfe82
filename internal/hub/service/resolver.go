package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
)

// credentialSources returns the principal collections in resolution
// priority order: admins, then alumni, then faculty, then users. This
// ordering is a design commitment - when the same email exists in more than
// one collection, every auth flow must resolve it identically - so all
// three flows go through this one list.
func (s *AuthService) credentialSources() []store.Credentials {
	return []store.Credentials{
		s.Store.Admins(),
		s.Store.Alumni(),
		s.Store.Faculty(),
		s.Store.Users(),
	}
}

// resolvePrincipal probes each collection with an exact-match email lookup
// and returns the first hit together with the Credentials capability of the
// collection that owns it, so reset-state writes land in the right place.
func (s *AuthService) resolvePrincipal(ctx context.Context, email string) (domain.Principal, store.Credentials, error) {
	for _, src := range s.credentialSources() {
		principal, err := src.FindByEmail(ctx, email)
		if err == nil {
			return principal, src, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, nil, fmt.Errorf("failed to look up principal: %w", err)
		}
	}
	return domain.Principal{}, nil, ErrUserNotFound
}
