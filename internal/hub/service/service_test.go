package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/internal/hub/store/drivers/sqlite"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/idx"
	"github.com/tariq205/duetcareerhub/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// fakeSender records outgoing mail instead of dialing SMTP.
type fakeSender struct {
	mu    sync.Mutex
	sent  []fakeMail
	fail  bool
	failE error
}

type fakeMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return f.failE
	}
	f.sent = append(f.sent, fakeMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeSender) last(t *testing.T) fakeMail {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent, "expected at least one mail to be sent")
	return f.sent[len(f.sent)-1]
}

func newTestAuth(t *testing.T, s store.Store, sender *fakeSender) *AuthService {
	t.Helper()

	tokens, err := jwtx.NewHS256([]byte("test-secret"), "careerhub-test")
	require.NoError(t, err)

	return &AuthService{
		Store:        s,
		Mail:         sender,
		Tokens:       tokens,
		Issuer:       "careerhub-test",
		AccessTTL:    jwtx.DefaultAccessTokenTTL,
		ResetCodeTTL: 10 * time.Minute,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func seedAdmin(t *testing.T, s store.Store, email, password string) domain.Admin {
	t.Helper()
	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         "Admin",
		LastName:     "Root",
		Email:        email,
		PasswordHash: mustHash(t, password),
	}
	require.NoError(t, s.Admins().CreateAdmin(context.Background(), admin))
	return admin
}

func seedAlumni(t *testing.T, s store.Store, email, password string) domain.Alumni {
	t.Helper()
	alumni := domain.Alumni{
		ID:             idx.New().String(),
		Name:           "Ayesha",
		LastName:       "Khan",
		Department:     "CSE",
		RollNumber:     idx.New().String(),
		GraduationYear: 2021,
		Degree:         "BSc",
		Email:          email,
		PasswordHash:   mustHash(t, password),
	}
	require.NoError(t, s.Alumni().CreateAlumni(context.Background(), alumni))
	return alumni
}

func seedUser(t *testing.T, s store.Store, email, password string) domain.User {
	t.Helper()
	user := domain.User{
		ID:           idx.New().String(),
		Name:         "Generic",
		Email:        email,
		PasswordHash: mustHash(t, password),
		Role:         domain.RoleStudent,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), user))
	return user
}
