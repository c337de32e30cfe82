package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type BootstrapHandler struct {
	Bootstrap *service.BootstrapService
}

type bootstrapRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP creates the first admin. The token travels in a header so it
// never gets mixed into the account payload.
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		writeFailure(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req bootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	admin, err := h.Bootstrap.Bootstrap(r.Context(), service.BootstrapInput{
		Token:    token,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrBootstrapUnavailable):
		writeFailure(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	case errors.Is(err, service.ErrBadBootstrapToken):
		writeFailure(w, http.StatusUnauthorized, "Invalid bootstrap token")
		return
	case errors.Is(err, service.ErrAlreadyBootstrapped):
		writeFailure(w, http.StatusUnauthorized, "An admin account already exists")
		return
	default:
		l.Error("bootstrap failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	l.Info("bootstrap complete", "admin_id", admin.ID)
	writeSuccess(w, http.StatusCreated, "Admin account created", toPrincipalView(admin.Principal()))
}
