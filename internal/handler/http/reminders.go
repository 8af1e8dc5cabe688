package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// createReminder is the direct table-shaped insert path. Clients prefer
// the create-reminder function and fall back to this endpoint when the
// function is unavailable.
func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
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

// completeReminder is idempotent: completing an already-completed
// reminder succeeds.
func (h *Handler) completeReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ReminderService.CompleteReminder(ctx, userID, chi.URLParam(r, "reminderID")); err != nil {
		log.Err(err).Msg("error occurred during reminder completion")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listReminderItems returns the saved items that currently carry a live
// reminder, ordered by fire time.
func (h *Handler) listReminderItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	items, err := h.services.ReminderService.ListLiveReminderItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during reminder items listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
