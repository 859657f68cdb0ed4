package api

import (
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GioNegri/PedagogIA2/internal/domain"
)

// getPathRecordID extracts a history record id from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed id if valid
//   - (0, error): Zero and an appropriate error if the parameter is missing or invalid
func getPathRecordID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getOwnerEmail extracts the owner_email query parameter and checks that it is
// a plausible email address. History reads and deletes are scoped by owner, so
// every such request must carry it.
func getOwnerEmail(r *http.Request) (string, error) {
	email := r.URL.Query().Get("owner_email")
	if email == "" {
		return "", domain.NewValidationError("owner_email", "is required", domain.ErrValidation)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.NewValidationError("owner_email", "has invalid format", domain.ErrValidation)
	}

	return email, nil
}
