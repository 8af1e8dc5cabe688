package handler

import (
	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/handler/http"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
