package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/GioNegri/PedagogIA2/internal/api/shared"
	"github.com/GioNegri/PedagogIA2/internal/generation"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/service"
)

// GenerateHandler handles content generation HTTP requests.
type GenerateHandler struct {
	contentService service.ContentService
	validator      *validator.Validate
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(contentService service.ContentService) *GenerateHandler {
	return &GenerateHandler{
		contentService: contentService,
		validator:      validator.New(),
	}
}

// Generate handles POST /api/generate requests. It produces the requested
// content through the LLM and records it in the owner's history before
// returning it.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	genReq := generation.Request{
		Kind:            req.Kind,
		Topic:           req.Topic,
		Grade:           req.Grade,
		DurationMinutes: req.DurationMinutes,
		Text:            req.Text,
		Mode:            req.Mode,
		SideA:           req.SideA,
		SideB:           req.SideB,
	}

	content, err := h.contentService.GenerateAndSave(r.Context(), req.OwnerEmail, genReq)
	if err != nil {
		log.Error("content generation failed", "error", err, "kind", req.Kind)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateResponse{
		ID:    content.ID,
		Kind:  content.Kind,
		Title: content.Title,
		Body:  content.Body,
	})
}
