package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns token with id and role", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		res, err := auth.Login(ctx, "ayesha@duet.ac.bd", "s3cret-pw")
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)

		claims, err := auth.Tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, alumni.ID, claims.Subject)
		assert.Equal(t, string(domain.RoleAlumni), claims.Role)

		ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
		assert.Equal(t, time.Hour, ttl)
	})

	t.Run("response never leaks credential fields", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		res, err := auth.Login(ctx, "ayesha@duet.ac.bd", "s3cret-pw")
		require.NoError(t, err)
		assert.Empty(t, res.Principal.PasswordHash)
		assert.Nil(t, res.Principal.OTP)
		assert.Nil(t, res.Principal.OTPExpires)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		_, err := auth.Login(ctx, "ayesha@duet.ac.bd", "wrong-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})

		_, err := auth.Login(ctx, "nobody@duet.ac.bd", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("email lookup is exact match", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		_, err := auth.Login(ctx, "AYESHA@duet.ac.bd", "s3cret-pw")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestResolverPriority(t *testing.T) {
	ctx := context.Background()

	t.Run("admin wins over alumni for the same email", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		admin := seedAdmin(t, s, "shared@duet.ac.bd", "admin-pw")
		seedAlumni(t, s, "shared@duet.ac.bd", "alumni-pw")

		res, err := auth.Login(ctx, "shared@duet.ac.bd", "admin-pw")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, res.Principal.ID)
		assert.Equal(t, domain.RoleAdmin, res.Principal.Role)

		// The alumni record's password does not authenticate: the admin
		// record shadows it entirely.
		_, err = auth.Login(ctx, "shared@duet.ac.bd", "alumni-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("alumni wins over generic user", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		alumni := seedAlumni(t, s, "shared@duet.ac.bd", "alumni-pw")
		seedUser(t, s, "shared@duet.ac.bd", "user-pw")

		res, err := auth.Login(ctx, "shared@duet.ac.bd", "alumni-pw")
		require.NoError(t, err)
		assert.Equal(t, alumni.ID, res.Principal.ID)
	})

	t.Run("reset lands on the resolved record only", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		seedAdmin(t, s, "shared@duet.ac.bd", "admin-pw")
		alumni := seedAlumni(t, s, "shared@duet.ac.bd", "alumni-pw")

		require.NoError(t, auth.RequestPasswordReset(ctx, "shared@duet.ac.bd"))

		got, err := s.Alumni().FindByEmail(ctx, alumni.Email)
		require.NoError(t, err)
		assert.False(t, got.HasPendingReset(), "alumni record must stay untouched")
	})
}

var otpBodyRe = regexp.MustCompile(`\b(\d{4})\b`)

func otpFromMail(t *testing.T, m fakeMail) string {
	t.Helper()
	match := otpBodyRe.FindStringSubmatch(m.Body)
	require.NotNil(t, match, "mail body should contain a 4-digit code: %q", m.Body)
	return match[1]
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a 4 digit code with ten minute expiry and mails it", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		before := time.Now()
		require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))

		got, err := s.Alumni().FindByEmail(ctx, alumni.Email)
		require.NoError(t, err)
		require.True(t, got.HasPendingReset())

		n, err := strconv.Atoi(*got.OTP)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)

		assert.WithinDuration(t, before.Add(10*time.Minute), *got.OTPExpires, 5*time.Second)

		mail := sender.last(t)
		assert.Equal(t, alumni.Email, mail.To)
		assert.Equal(t, *got.OTP, otpFromMail(t, mail))
	})

	t.Run("unknown email mutates nothing and sends nothing", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)

		err := auth.RequestPasswordReset(ctx, "nobody@duet.ac.bd")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, sender.sent)
	})

	t.Run("second request overwrites the first code", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))
		first := otpFromMail(t, sender.last(t))

		// Loop until the freshly drawn code differs, so the overwrite
		// check below is not vacuous.
		second := first
		for second == first {
			require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))
			second = otpFromMail(t, sender.last(t))
		}

		err := auth.ConfirmPasswordReset(ctx, alumni.Email, first, "new-pw")
		assert.ErrorIs(t, err, ErrCodeInvalidOrExpired)

		require.NoError(t, auth.ConfirmPasswordReset(ctx, alumni.Email, second, "new-pw"))
	})

	t.Run("mail failure surfaces but leaves the code pending", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{fail: true, failE: errors.New("smtp: connection refused")}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "s3cret-pw")

		err := auth.RequestPasswordReset(ctx, alumni.Email)
		require.Error(t, err)

		got, err := s.Alumni().FindByEmail(ctx, alumni.Email)
		require.NoError(t, err)
		assert.True(t, got.HasPendingReset())
	})
}

func TestConfirmPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces the hash and clears the code", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "old-pw")

		require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))
		code := otpFromMail(t, sender.last(t))

		require.NoError(t, auth.ConfirmPasswordReset(ctx, alumni.Email, code, "new-pw"))

		_, err := auth.Login(ctx, alumni.Email, "old-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.Login(ctx, alumni.Email, "new-pw")
		require.NoError(t, err)

		got, err := s.Alumni().FindByEmail(ctx, alumni.Email)
		require.NoError(t, err)
		assert.False(t, got.HasPendingReset(), "reset state must be cleared")
	})

	t.Run("code is single use", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "old-pw")

		require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))
		code := otpFromMail(t, sender.last(t))

		require.NoError(t, auth.ConfirmPasswordReset(ctx, alumni.Email, code, "new-pw"))
		err := auth.ConfirmPasswordReset(ctx, alumni.Email, code, "newer-pw")
		assert.ErrorIs(t, err, ErrCodeInvalidOrExpired)
	})

	t.Run("wrong code", func(t *testing.T) {
		s := newTestStore(t)
		sender := &fakeSender{}
		auth := newTestAuth(t, s, sender)
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "old-pw")

		require.NoError(t, auth.RequestPasswordReset(ctx, alumni.Email))
		code := otpFromMail(t, sender.last(t))

		wrong := "1000"
		if wrong == code {
			wrong = "1001"
		}
		err := auth.ConfirmPasswordReset(ctx, alumni.Email, wrong, "new-pw")
		assert.ErrorIs(t, err, ErrCodeInvalidOrExpired)
	})

	t.Run("expired code", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "old-pw")

		// Write an already-expired code directly; expiry is evaluated
		// lazily at confirm time.
		require.NoError(t, s.Alumni().SetResetCode(ctx, alumni.ID, "4321", time.Now().Add(-time.Minute)))

		err := auth.ConfirmPasswordReset(ctx, alumni.Email, "4321", "new-pw")
		assert.ErrorIs(t, err, ErrCodeInvalidOrExpired)
	})

	t.Run("no pending code", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})
		alumni := seedAlumni(t, s, "ayesha@duet.ac.bd", "old-pw")

		err := auth.ConfirmPasswordReset(ctx, alumni.Email, "1234", "new-pw")
		assert.ErrorIs(t, err, ErrCodeInvalidOrExpired)
	})

	t.Run("unknown email", func(t *testing.T) {
		s := newTestStore(t)
		auth := newTestAuth(t, s, &fakeSender{})

		err := auth.ConfirmPasswordReset(ctx, "nobody@duet.ac.bd", "1234", "new-pw")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
