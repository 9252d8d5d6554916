package middleware

import (
	"context"
	"net/http"
	"strings"

	"edumarket/internal/logger"
	"edumarket/internal/security"
)

// Injected key type to avoid context collisions
type contextKey string

const (
	AccountContextKey = contextKey("account")
	RoleContextKey    = contextKey("role")
)

// AuthMiddleware rejects requests without a valid bearer token before any
// handler logic runs, and places the verified claim into the request context.
func AuthMiddleware(tokens *security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.New()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header missing")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header")
				return
			}
			claims, err := tokens.Validate(parts[1])
			if err != nil {
				log.Debug().Msgf("Rejected token: %v", err)
				unauthorized(w, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), AccountContextKey, claims.Subject)
			ctx = context.WithValue(ctx, RoleContextKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"` + message + `"}`))
}
