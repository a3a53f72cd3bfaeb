package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/metrics"
)

// Metrics records request counts and latency per route pattern. The chi
// route pattern is used instead of the raw path to keep label cardinality
// bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		metrics.ObserveRequest(r.Method, path, wrapped.status, time.Since(started))
	})
}
