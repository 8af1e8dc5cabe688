package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// saveItem inserts a new saved item for the authenticated user.
// A duplicate of an already-saved URL yields 409.
func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.SaveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.SaveItem(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("error occurred during item save")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, userID, chi.URLParam(r, "itemID"))
	if err != nil {
		log.Err(err).Msg("error occurred during item fetch")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) listUncategorizedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	items, err := h.services.ItemService.ListUncategorized(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during uncategorized items listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// updateItem applies a partial update of the editable item fields.
// An empty patch is a 400; an edit of somebody else's row maps to 403.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.UpdateItem(ctx, userID, chi.URLParam(r, "itemID"), patch)
	if err != nil {
		log.Err(err).Msg("error occurred during item update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) archiveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.ArchiveItem(ctx, userID, chi.URLParam(r, "itemID")); err != nil {
		log.Err(err).Msg("error occurred during item archival")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restoreItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.RestoreItem(ctx, userID, chi.URLParam(r, "itemID")); err != nil {
		log.Err(err).Msg("error occurred during item restore")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteItem soft-deletes: the row is hidden from every view but kept
// until purged.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, userID, chi.URLParam(r, "itemID")); err != nil {
		log.Err(err).Msg("error occurred during item soft deletion")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// purgeItem removes the row permanently.
func (h *Handler) purgeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.PurgeItem(ctx, userID, chi.URLParam(r, "itemID")); err != nil {
		log.Err(err).Msg("error occurred during item purge")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
