package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the browser surfaces (web dashboard, extension) to call
// the API from the origins listed in the server configuration. Credentials
// are allowed because the dashboard sends the Authorization header on every
// request.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
