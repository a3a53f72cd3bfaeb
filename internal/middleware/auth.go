package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/result"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (*model.AuthClaims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeDenied(w, result.StatusUnauthenticated, "Missing or invalid authorization header.")
			return
		}

		token := strings.TrimSpace(header[7:])
		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			writeDenied(w, result.StatusUnauthenticated, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := map[string]struct{}{}
	for _, role := range allowedRoles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeDenied(w, result.StatusUnauthenticated, "Authentication required.")
				return
			}

			if _, exists := roleSet[claims.Role]; !exists {
				writeDenied(w, result.StatusUnauthorized, "Insufficient permissions.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*model.AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.AuthClaims)
	return claims, ok
}

func writeDenied(w http.ResponseWriter, status result.Status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status.HTTPStatus())
	_ = json.NewEncoder(w).Encode(result.New[any]().Fail(status, message))
}
