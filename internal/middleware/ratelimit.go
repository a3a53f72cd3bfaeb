package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"inventory-api/internal/result"
)

type clientLimiter struct {
	general  *rate.Limiter
	auth     *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles per client IP, with a stricter budget for the
// authentication endpoints.
type RateLimitMiddleware struct {
	generalRPM int
	authRPM    int
	mu         sync.Mutex
	clients    map[string]*clientLimiter
}

func NewRateLimitMiddleware(generalRPM int, authRPM int) *RateLimitMiddleware {
	if generalRPM <= 0 {
		generalRPM = 100
	}
	if authRPM <= 0 {
		authRPM = 10
	}

	m := &RateLimitMiddleware{
		generalRPM: generalRPM,
		authRPM:    authRPM,
		clients:    map[string]*clientLimiter{},
	}
	go m.evictStale()
	return m
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.limiterFor(clientIP(r))

		bucket := limiter.general
		if strings.HasPrefix(strings.ToLower(r.URL.Path), "/api/v1/auth/") {
			bucket = limiter.auth
		}

		if !bucket.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(
				result.New[any]().Fail(result.Status(http.StatusTooManyRequests), "Too many requests."))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(ip string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.clients[ip]
	if !ok {
		limiter = &clientLimiter{
			general: rate.NewLimiter(rate.Limit(float64(m.generalRPM)/60.0), m.generalRPM),
			auth:    rate.NewLimiter(rate.Limit(float64(m.authRPM)/60.0), m.authRPM),
		}
		m.clients[ip] = limiter
	}
	limiter.lastSeen = time.Now()
	return limiter
}

func (m *RateLimitMiddleware) evictStale() {
	for range time.Tick(5 * time.Minute) {
		m.mu.Lock()
		for ip, limiter := range m.clients {
			if time.Since(limiter.lastSeen) > 15*time.Minute {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
