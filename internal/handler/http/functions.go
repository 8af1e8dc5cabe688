package http

import (
	"encoding/json"
	"net/http"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// fnQuickSave is the legacy quick-save function: a bare URL plus the
// surface that produced it. Metadata enrichment happens server-side and
// is best-effort.
func (h *Handler) fnQuickSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.QuickSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.QuickSave(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("error occurred during quick save")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// fnFetchMetadata scrapes the given page for display metadata. A failed
// outbound fetch maps to 502; callers treat the result as best-effort.
func (h *Handler) fnFetchMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req models.FetchMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	metadata, err := h.services.MetadataService.FetchMetadata(ctx, req.URL)
	if err != nil {
		log.Err(err).Msg("error occurred during metadata fetch")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, metadata, http.StatusOK)
}

func (h *Handler) fnCreateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reminder, err := h.services.ReminderService.CreateReminder(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("error occurred during reminder creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusCreated)
}
