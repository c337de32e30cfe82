package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256_SignAndVerify(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("test-secret"), "duetcareerhub")
	require.NoError(t, err)

	claims := NewAccessClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", "alumni", "duetcareerhub", time.Hour, time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "alumni", got.Role)
	require.Equal(t, "duetcareerhub", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestHS256_ExpiryIsOneHourOut(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := NewAccessClaims("id", "admin", "hub", DefaultAccessTokenTTL, now)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestHS256_RejectsForgedToken(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256([]byte("real-secret"), "hub")
	require.NoError(t, err)
	forger, err := NewHS256([]byte("other-secret"), "hub")
	require.NoError(t, err)

	token, err := forger.Sign(NewAccessClaims("id", "admin", "hub", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestHS256_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("secret"), "hub")
	require.NoError(t, err)

	// Issued two hours ago with a one-hour lifetime.
	stale := NewAccessClaims("id", "faculty", "hub", time.Hour, time.Now().Add(-2*time.Hour))
	token, err := h.Sign(stale)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
	require.NotErrorIs(t, err, ErrInvalidToken, "expired and forged must stay distinguishable")
}

func TestHS256_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("secret"), "hub")
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := h.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestNewHS256_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256(nil, "hub")
	require.Error(t, err)
}
