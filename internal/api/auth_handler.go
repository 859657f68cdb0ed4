package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/GioNegri/PedagogIA2/internal/api/shared"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/service"
)

// AuthHandler handles registration and login API requests.
type AuthHandler struct {
	accountService service.AccountService
	validator      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accountService service.AccountService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		validator:      validator.New(),
	}
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountService.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			// Elevated so repeated probing of the allowlist is visible in logs.
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden,
				"Email not authorized for registration", err, shared.WithElevatedLogLevel())
		case errors.Is(err, service.ErrAlreadyRegistered):
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
				"Email already registered", err)
		default:
			log.Error("failed to register account", "error", err)
			HandleAPIError(w, r, err, "")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Email:       account.Email,
		DisplayName: account.DisplayName,
	})
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	ok, err := h.accountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login check failed", "error", err)
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
			"Invalid credentials", service.ErrInvalidCredentials, shared.WithElevatedLogLevel())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Email: req.Email,
		OK:    true,
	})
}
