package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/internal/hub/store/drivers/sqlite"
	"github.com/tariq205/duetcareerhub/pkg/cryptox"
	"github.com/tariq205/duetcareerhub/pkg/idx"
	"github.com/tariq205/duetcareerhub/pkg/jwtx"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type testEnv struct {
	router *Router
	store  store.Store
	auth   *service.AuthService
}

type testSender struct{ sent []string }

func (s *testSender) Send(_ context.Context, _, _, body string) error {
	s.sent = append(s.sent, body)
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256([]byte("test-secret"), "careerhub-test")
	require.NoError(t, err)

	auth := &service.AuthService{
		Store:        st,
		Mail:         &testSender{},
		Tokens:       tokens,
		Issuer:       "careerhub-test",
		AccessTTL:    time.Hour,
		ResetCodeTTL: 10 * time.Minute,
	}

	logger := slogx.New(slogx.Config{Service: "test", Level: "error", Format: "text"})
	router := NewRouter(tokens, "test", st, logger)
	router.AuthService = auth
	router.BootstrapService = &service.BootstrapService{Store: st, Token: "seed-token"}
	router.AlumniService = &service.AlumniService{Store: st}
	router.FacultyService = &service.FacultyService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.EventService = &service.EventService{Store: st}
	router.AnnouncementService = &service.AnnouncementService{Store: st}
	router.TermsService = &service.TermsService{Store: st}
	router.StatsService = &service.StatsService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st, auth: auth}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seedAdmin(t *testing.T) (domain.Admin, string) {
	t.Helper()

	hash, err := cryptox.HashPassword("admin-pw")
	require.NoError(t, err)
	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         "Admin",
		Email:        "admin@duet.ac.bd",
		PasswordHash: hash,
	}
	require.NoError(t, e.store.Admins().CreateAdmin(context.Background(), admin))

	res, err := e.auth.Login(context.Background(), admin.Email, "admin-pw")
	require.NoError(t, err)
	return admin, res.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("login returns token and sanitized user", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _ := env.seedAdmin(t)

		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"email": admin.Email, "password": "admin-pw",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, admin.ID, user["id"])
		assert.Equal(t, "admin", user["role"])
		assert.NotContains(t, user, "passwordHash")
		assert.NotContains(t, user, "otp")
	})

	t.Run("auth endpoints use the bare message shape", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"email": "nobody@duet.ac.bd", "password": "x",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "User not found", body["message"])
		assert.NotContains(t, body, "status")
		assert.NotContains(t, body, "responseCode")
	})

	t.Run("wrong password is 400", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _ := env.seedAdmin(t)

		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"email": admin.Email, "password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})

	t.Run("forgot password distinguishes unknown emails", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _ := env.seedAdmin(t)

		rec := env.do(t, http.MethodPost, "/v1/auth/forgot-password", "", map[string]string{"email": admin.Email})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OTP sent to your email", decodeBody(t, rec)["message"])

		rec = env.do(t, http.MethodPost, "/v1/auth/forgot-password", "", map[string]string{"email": "nobody@duet.ac.bd"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reset password with bad code is 400", func(t *testing.T) {
		env := newTestEnv(t)
		admin, _ := env.seedAdmin(t)

		require.NoError(t, env.store.Admins().SetResetCode(context.Background(), admin.ID, "4321", time.Now().Add(10*time.Minute)))

		rec := env.do(t, http.MethodPost, "/v1/auth/reset-password", "", map[string]string{
			"email": admin.Email, "otp": "1111", "newPassword": "new-pw",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid or expired OTP", decodeBody(t, rec)["message"])

		rec = env.do(t, http.MethodPost, "/v1/auth/reset-password", "", map[string]string{
			"email": admin.Email, "otp": "4321", "newPassword": "new-pw",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password reset successful", decodeBody(t, rec)["message"])
	})
}

func TestAdminProtection(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedAdmin(t)

	rec := env.do(t, http.MethodGet, "/v1/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// An alumni token authenticates but lacks the admin role.
	rec = env.do(t, http.MethodPost, "/v1/alumni", "", map[string]any{
		"name": "Ayesha", "department": "CSE", "rollNumber": "171001",
		"email": "ayesha@duet.ac.bd", "password": "pw-123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	loginRec := env.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": "ayesha@duet.ac.bd", "password": "pw-123456",
	})
	require.Equal(t, http.StatusOK, loginRec.Code)
	alumniToken, _ := decodeBody(t, loginRec)["token"].(string)
	require.NotEmpty(t, alumniToken)

	rec = env.do(t, http.MethodGet, "/v1/stats", alumniToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, http.StatusOK, body["responseCode"])
}

func TestAlumniEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedAdmin(t)

	rec := env.do(t, http.MethodPost, "/v1/alumni", "", map[string]any{
		"name": "Rahim", "department": "EEE", "rollNumber": "171002",
		"email": "rahim@duet.ac.bd", "password": "pw-123456",
		"skills": []string{"go"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	data, ok := created["data"].(map[string]any)
	require.True(t, ok)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "passwordHash")

	// Duplicate roll number in the same department.
	rec = env.do(t, http.MethodPost, "/v1/alumni", "", map[string]any{
		"name": "Other", "department": "EEE", "rollNumber": "171002",
		"email": "other@duet.ac.bd", "password": "pw-123456",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Listing needs a token.
	rec = env.do(t, http.MethodGet, "/v1/alumni?search=rahim", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/alumni?search=rahim", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody(t, rec)
	assert.EqualValues(t, 1, list["count"])

	rec = env.do(t, http.MethodDelete, "/v1/alumni/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/alumni/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBootstrapEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/bootstrap", "", map[string]string{
		"name": "Root", "email": "root@duet.ac.bd", "password": "root-pw",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/bootstrap", bytes.NewBufferString(
		`{"name":"Root","email":"root@duet.ac.bd","password":"root-pw"}`))
	req.Header.Set("X-Bootstrap-Token", "seed-token")
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
