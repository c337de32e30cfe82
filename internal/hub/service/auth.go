package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/mail"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/jwtx"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCodeInvalidOrExpired = errors.New("invalid or expired reset code")
)

const resetMailSubject = "Password Reset OTP"

// AuthService implements the three credential flows: login, request
// password reset, confirm password reset. Each flow resolves the principal
// the same way and runs as an independent unit of work; the only state it
// ever mutates is the credential hash and the reset-state pair.
type AuthService struct {
	Store  store.Store
	Mail   mail.Sender
	Tokens *jwtx.HS256
	Issuer string

	AccessTTL    time.Duration // access token lifetime, 1h
	ResetCodeTTL time.Duration // reset code lifetime, 10m
}

// LoginResult carries the minted token and the principal view with the
// credential and reset-state fields already stripped.
type LoginResult struct {
	Token     string
	Principal domain.Principal
}

// Login verifies the email/password pair and mints an access token binding
// the principal id and role. Nothing is mutated on login.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	principal, _, err := s.resolvePrincipal(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, principal.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			// Malformed digest in the store. Still an authentication
			// failure from the caller's perspective.
			log.Warn("stored password digest is malformed", "principal_id", principal.ID, "err", err)
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(principal.ID, string(principal.Role), s.Issuer, s.AccessTTL, time.Now())
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return LoginResult{Token: token, Principal: sanitize(principal)}, nil
}

// RequestPasswordReset generates a fresh reset code, persists it with a
// ten-minute expiry, and mails it to the principal's registered address. A
// previously pending code is overwritten: last writer wins. When the mail
// dispatch fails the stored code is intentionally left in place - the user
// retries with a fresh request, which overwrites it.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	principal, creds, err := s.resolvePrincipal(ctx, email)
	if err != nil {
		return err
	}

	code, err := cryptox.GenerateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	expiresAt := time.Now().Add(s.ResetCodeTTL)
	if err := creds.SetResetCode(ctx, principal.ID, code, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	body := fmt.Sprintf("Your OTP for password reset is %s (valid for 10 minutes)", code)
	if err := s.Mail.Send(ctx, principal.Email, resetMailSubject, body); err != nil {
		log.Error("failed to send reset code mail", "principal_id", principal.ID, "err", err)
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	return nil
}

// ConfirmPasswordReset checks the submitted code against the stored pending
// state and, on success, replaces the password hash and clears the reset
// state in a single persisted update. A wrong code and a stale code are
// deliberately indistinguishable to the caller, and the code is single-use.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	principal, creds, err := s.resolvePrincipal(ctx, email)
	if err != nil {
		return err
	}

	if !resetCodeValid(principal, code, time.Now()) {
		return ErrCodeInvalidOrExpired
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := creds.ResetPassword(ctx, principal.ID, newHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// resetCodeValid requires a pending code that matches the submission and an
// expiry strictly in the future. Expiry is checked lazily here; there is no
// background sweep.
func resetCodeValid(p domain.Principal, code string, now time.Time) bool {
	if !p.HasPendingReset() {
		return false
	}
	return *p.OTP == code && p.OTPExpires.After(now)
}

// sanitize strips the credential and reset-state fields from the view
// returned to clients.
func sanitize(p domain.Principal) domain.Principal {
	p.PasswordHash = ""
	p.OTP = nil
	p.OTPExpires = nil
	return p
}
