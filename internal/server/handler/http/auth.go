package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/expensio/expensio/internal/models"
	"github.com/expensio/expensio/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a user and returns a fresh token with the public view.
	Register(ctx context.Context, username, email, password string) (string, *models.PublicUser, error)
	// Login verifies credentials and returns a fresh token with the public view.
	Login(ctx context.Context, email, password string) (string, *models.PublicUser, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Logger records real store failures; response bodies stay generic.
	Logger *zap.Logger
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse carries a freshly issued token and the public user view.
type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register handles POST /auth/register.
// It expects a JSON body with non-empty username, email, and password,
// creates the user, and responds with a session token and the public user
// view. A duplicate email maps to 409; other store failures map to a
// generic 500 with the cause logged server-side only.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	t, user, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmptyField):
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "user already exists")
		return
	case err != nil:
		h.Logger.Error("register failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: t, User: *user})
}

// Login handles POST /auth/login.
// An unknown email and a wrong password are distinct 400 responses; the
// store is never written.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	t, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusBadRequest, "User not found")
		return
	case errors.Is(err, service.ErrWrongPassword):
		writeError(w, http.StatusBadRequest, "Wrong password")
		return
	case err != nil:
		h.Logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: t, User: *user})
}
