package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed tokens, unexpected algorithms and
	// signature failures - anything that suggests the token was forged.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired is a structurally valid, correctly signed token whose
	// lifetime has passed. Callers may want to distinguish this from
	// forgery when phrasing the rejection.
	ErrExpired = errors.New("jwtx: token expired")

	errEmptySecret = errors.New("jwtx: signing secret must not be empty")
)

// HS256 signs and verifies access tokens with a single shared secret loaded
// at process start. It holds no mutable state and is safe for concurrent use.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a signer/verifier around the process-wide secret.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errEmptySecret
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Sign produces a compact serialized JWT for the given claims.
func (h *HS256) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(h.secret)
}

// Verify parses and validates a token, returning its claims. Signature and
// algorithm failures map to ErrInvalidToken; a valid-but-stale token maps to
// ErrExpired so the caller can report the two cases differently.
func (h *HS256) Verify(tokenString string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
