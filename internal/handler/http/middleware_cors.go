package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured front-end origins to call the API with
// the session cookie. Without origins it is a pass-through.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	if len(h.serverCfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   h.serverCfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
