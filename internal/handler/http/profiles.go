package http

import (
	"encoding/json"
	"net/http"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during profile fetch")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// completeProfile finishes onboarding: it validates and stores the
// username and interests, then seeds interest collections.
func (h *Handler) completeProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.CompleteProfile(ctx, userID, patch)
	if err != nil {
		log.Err(err).Msg("error occurred during profile completion")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
