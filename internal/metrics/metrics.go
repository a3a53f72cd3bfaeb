package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inventory-api/internal/result"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "HTTP requests processed, labeled by method, route and status code.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method string, path string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveLogin records a login attempt by its envelope status.
func ObserveLogin(status result.Status) {
	var outcome string
	switch status {
	case result.StatusSuccess:
		outcome = "success"
	case result.StatusBadRequest:
		outcome = "bad_request"
	case result.StatusUnauthenticated:
		outcome = "rejected"
	default:
		outcome = "error"
	}
	loginsTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
