package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no route, keeping the label
// set bounded.
const unmatchedRoute = "unmatched"

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		pattern := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		metrics.ObserveHTTPRequest(r.Method, pattern, status, time.Since(start))
	})
}
