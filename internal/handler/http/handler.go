package http

import (
	"net/http"

	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/service"
	"github.com/savedit/savedit/internal/utils"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

// requireUserID extracts the authenticated user's ID placed in the request
// context by the auth middleware. A missing ID means the handler was reached
// outside the authorized route group; the request is rejected with 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
