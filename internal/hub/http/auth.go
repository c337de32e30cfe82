package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/pkg/httpx"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

// AuthHandler serves the three credential endpoints. Their response bodies
// use the legacy bare {message} shape, not the management envelope.
type AuthHandler struct {
	Auth *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  principalView `json:"user"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	res, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	default:
		l.Error("login failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token: res.Token,
		User:  toPrincipalView(res.Principal),
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// HandleForgotPassword starts a reset. The 404 for unknown emails reveals
// whether an account exists; the status contract is frozen, so this stays.
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	err := h.Auth.RequestPasswordReset(r.Context(), req.Email)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	default:
		l.Error("password reset request failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "OTP sent to your email")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "Email, OTP and new password are required")
		return
	}

	err := h.Auth.ConfirmPasswordReset(r.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, service.ErrCodeInvalidOrExpired):
		writeMessage(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	default:
		l.Error("password reset failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Password reset successful")
}
