package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/GioNegri/PedagogIA2/internal/api/shared"
	"github.com/GioNegri/PedagogIA2/internal/platform/logger"
	"github.com/GioNegri/PedagogIA2/internal/service"
)

// HistoryHandler handles content-history HTTP requests.
type HistoryHandler struct {
	historyService service.HistoryService
	validator      *validator.Validate
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		validator:      validator.New(),
	}
}

// SaveRecord handles POST /api/history requests.
func (h *HistoryHandler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req SaveRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	id, err := h.historyService.Save(r.Context(), req.OwnerEmail, req.Kind, req.Title, req.Body)
	if err != nil {
		log.Error("failed to save history record", "error", err, "kind", req.Kind)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SaveRecordResponse{ID: id})
}

// ListRecords handles GET /api/history requests. Results are summaries only,
// newest first.
func (h *HistoryHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	ownerEmail, err := getOwnerEmail(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summaries, err := h.historyService.ListMine(r.Context(), ownerEmail)
	if err != nil {
		log.Error("failed to list history records", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]RecordSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, newRecordSummaryResponse(s))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetRecord handles GET /api/history/{id} requests.
func (h *HistoryHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	ownerEmail, err := getOwnerEmail(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathRecordID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	record, err := h.historyService.Open(r.Context(), ownerEmail, id)
	if err != nil {
		// A record owned by someone else surfaces as not found, same as a
		// missing one. Nothing here distinguishes the two to the caller.
		log.Debug("failed to open history record", "error", err, "record_id", id)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newRecordResponse(record))
}

// DeleteRecord handles DELETE /api/history/{id} requests.
func (h *HistoryHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	ownerEmail, err := getOwnerEmail(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, err := getPathRecordID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.historyService.Remove(r.Context(), ownerEmail, id); err != nil {
		log.Debug("failed to delete history record", "error", err, "record_id", id)
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
