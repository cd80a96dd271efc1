package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/user/provider-registry/pkg/util"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// WithClaims returns a context carrying the token claims.
func WithClaims(ctx context.Context, claims *util.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFrom extracts the token claims stored by the Auth middleware.
func ClaimsFrom(ctx context.Context) *util.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*util.Claims)
	return claims
}

// Auth is a middleware factory that returns a bearer-token
// authentication middleware. It validates the JWT from the
// Authorization header and stores its claims in the request context.
func Auth(secretKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("bearer token missing from request", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Unauthorized: invalid Authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := util.ValidateToken(parts[1], secretKey)
			if err != nil {
				logger.Warn("token validation failed", "error", err, "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireClaim gates a route on the presence of a named authorization
// claim. It must run after Auth.
func RequireClaim(name string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFrom(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			if !claims.HasClaim(name) {
				logger.Warn("missing authorization claim", "claim", name, "user_id", claims.UserID)
				http.Error(w, "Forbidden: missing claim "+name, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
