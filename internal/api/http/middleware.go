package http

import (
	"context"
	"net/http"
	"strings"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// AuthMiddleware resolves the caller's identity from a bearer token. Tokens
// are optional on most routes (guest checkout is a first-class path); a
// present-but-invalid token is rejected outright.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), domain.Actor{IsGuest: true})))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), claims.Actor())))
	})
}

// RequireUser rejects guests.
func (m *AuthMiddleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if actorFrom(r).IsGuest {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects everything but admin actors.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !actorFrom(r).IsAdmin() {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	}
}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFrom(r *http.Request) domain.Actor {
	if actor, ok := r.Context().Value(actorContextKey).(domain.Actor); ok {
		return actor
	}
	return domain.Actor{IsGuest: true}
}
