package http

import (
	"encoding/json"
	"net/http"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
)

// RPC bodies keep the parameter names of the pre-rewrite clients, so the
// dashboard and the extension can call the procedures unchanged.

type usernameAvailableRequest struct {
	Username string `json:"username"`
}

type usernameAvailableResponse struct {
	Available bool `json:"available"`
}

type interestCollectionsRequest struct {
	Interests []string `json:"interests"`
}

type interestCollectionsResponse struct {
	Created int `json:"created"`
}

// rpcListAccessibleCollections returns every collection the caller owns
// or has been granted a role on, annotated with role, is_shared,
// item_count and sample thumbnails.
func (h *Handler) rpcListAccessibleCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	collections, err := h.services.CollectionService.ListAccessible(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during accessible collections listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, collections, http.StatusOK)
}

func (h *Handler) rpcIsUsernameAvailable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req usernameAvailableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	available, err := h.services.ProfileService.IsUsernameAvailable(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("error occurred during username availability check")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, usernameAvailableResponse{Available: available}, http.StatusOK)
}

func (h *Handler) rpcCreateInterestCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req interestCollectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProfileService.CreateInterestCollections(ctx, userID, req.Interests)
	if err != nil {
		log.Err(err).Msg("error occurred during interest collections creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, interestCollectionsResponse{Created: created}, http.StatusOK)
}
