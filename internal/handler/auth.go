package handler

import (
	"errors"
	"net/http"

	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/internal/service"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	WriteData(w, http.StatusOK, resp)
}

func (h *AuthHandler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, model.NewUnauthorizedError("invalid email or password"))
	case errors.Is(err, service.ErrEmailAlreadyExists):
		WriteError(w, model.NewConflictError("an account with this email already exists"))
	case errors.Is(err, service.ErrEmailRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email is required"},
		}))
	case errors.Is(err, service.ErrInvalidEmail):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email is not valid"},
		}))
	case errors.Is(err, service.ErrPasswordRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "password", Message: "password is required"},
		}))
	case errors.Is(err, service.ErrPasswordTooShort):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "password", Message: "password must be at least 8 characters"},
		}))
	case errors.Is(err, service.ErrPasswordTooLong):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "password", Message: "password must be at most 72 characters"},
		}))
	default:
		WriteError(w, model.NewInternalError("authentication failed"))
	}
}
