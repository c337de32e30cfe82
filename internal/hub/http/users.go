package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tariq205/duetcareerhub/internal/hub/domain"
	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

type UserHandler struct {
	Users *service.UserService
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := h.Users.RegisterUser(r.Context(), service.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidRole):
		writeFailure(w, http.StatusBadRequest, "Invalid role")
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeFailure(w, http.StatusConflict, "Email already exists")
		return
	default:
		l.Error("user registration failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered", toPrincipalView(user.Principal()))
}
