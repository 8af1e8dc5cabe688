package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
)

type createCollectionRequest struct {
	Name string `json:"name"`
}

type shareCollectionRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (h *Handler) createCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	collection, err := h.services.CollectionService.CreateCollection(ctx, userID, req.Name)
	if err != nil {
		log.Err(err).Msg("error occurred during collection creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, collection, http.StatusCreated)
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	collection, err := h.services.CollectionService.GetCollection(ctx, userID, chi.URLParam(r, "collectionID"))
	if err != nil {
		log.Err(err).Msg("error occurred during collection fetch")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, collection, http.StatusOK)
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	collections, err := h.services.CollectionService.ListAccessible(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during collections listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, collections, http.StatusOK)
}

func (h *Handler) listCollectionItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	items, err := h.services.ItemService.ListByCollection(ctx, userID, chi.URLParam(r, "collectionID"))
	if err != nil {
		log.Err(err).Msg("error occurred during collection items listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// deleteCollection removes a collection. Owner only; the member and item
// rows cascade away while the saved items themselves survive.
func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.CollectionService.DeleteCollection(ctx, userID, chi.URLParam(r, "collectionID")); err != nil {
		log.Err(err).Msg("error occurred during collection deletion")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listItemCollections returns the IDs of the collections containing the
// given item, so clients can pre-check membership state.
func (h *Handler) listItemCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	ids, err := h.services.CollectionService.ListContainingItem(ctx, userID, chi.URLParam(r, "itemID"))
	if err != nil {
		log.Err(err).Msg("error occurred during item collections listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}

// attachItem adds an item to a collection. Attaching an item that is
// already a member is a no-op success.
func (h *Handler) attachItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	collectionID := chi.URLParam(r, "collectionID")
	itemID := chi.URLParam(r, "itemID")

	if err := h.services.CollectionService.AttachItem(ctx, userID, collectionID, itemID); err != nil {
		log.Err(err).Msg("error occurred during item attach")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) detachItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	collectionID := chi.URLParam(r, "collectionID")
	itemID := chi.URLParam(r, "itemID")

	if err := h.services.CollectionService.DetachItem(ctx, userID, collectionID, itemID); err != nil {
		log.Err(err).Msg("error occurred during item detach")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// shareCollection grants another user an editor or viewer role.
// Only the owner can share.
func (h *Handler) shareCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req shareCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CollectionService.ShareCollection(ctx, userID, chi.URLParam(r, "collectionID"), req.UserID, req.Role); err != nil {
		log.Err(err).Msg("error occurred during collection sharing")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
