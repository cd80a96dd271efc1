package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/user/provider-registry/internal/usecase"
	"github.com/user/provider-registry/internal/validation"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	useCase usecase.AuthUseCase
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{useCase: uc, logger: logger}
}

// Register creates a credential record and answers with a signed token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if problems := validation.CheckCredentials(req.Email, req.Password); len(problems) > 0 {
		respondProblems(w, problems)
		return
	}

	token, err := h.useCase.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "email already registered")
			return
		}
		h.logger.Error("failed to register user", "error", err)
		respondError(w, http.StatusBadRequest, "could not register user")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Login verifies credentials and answers with a signed token. A locked
// account reports "blocked user" regardless of the password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserBlocked):
			respondError(w, http.StatusBadRequest, "blocked user")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			respondError(w, http.StatusBadRequest, "invalid credentials")
		default:
			h.logger.Error("failed to log in user", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}
