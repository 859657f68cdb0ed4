package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-playground/validator/v10"

	"github.com/GioNegri/PedagogIA2/internal/api/shared"
	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/service"
	"github.com/GioNegri/PedagogIA2/internal/store"

	"github.com/go-chi/chi/v5"
)

// AllowlistHandler handles administration of the registration allowlist.
type AllowlistHandler struct {
	allowlistService service.AllowlistService
	validator        *validator.Validate
}

// NewAllowlistHandler creates a new AllowlistHandler.
func NewAllowlistHandler(allowlistService service.AllowlistService) *AllowlistHandler {
	return &AllowlistHandler{
		allowlistService: allowlistService,
		validator:        validator.New(),
	}
}

// List handles GET /api/allowlist requests.
func (h *AllowlistHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	emails, err := h.allowlistService.List(r.Context())
	if err != nil {
		log.Error("failed to list allowlist", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AllowlistResponse{Emails: emails})
}

// Add handles POST /api/allowlist requests.
func (h *AllowlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req AllowlistAddRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.allowlistService.Add(r.Context(), req.Email); err != nil {
		if errors.Is(err, store.ErrAlreadyAllowed) {
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
				"Email already on the allowlist", err)
			return
		}
		log.Error("failed to add allowlist entry", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Remove handles DELETE /api/allowlist/{email} requests. Removing an email
// that is not on the list succeeds quietly.
func (h *AllowlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r,
			domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("email", "has invalid format", domain.ErrValidation), "")
		return
	}

	if err := h.allowlistService.Remove(r.Context(), email); err != nil {
		log.Error("failed to remove allowlist entry", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
