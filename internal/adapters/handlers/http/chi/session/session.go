package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// TokenHeader carries the session token on authenticated requests
const TokenHeader = "X-Token"

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Require resolves the X-Token header to a user id and rejects the request
// with 401 when the token is absent, unknown or expired.
func Require(authService port.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ValidateSession(r.Context(), token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Optional resolves the X-Token header when present but never rejects:
// public resources stay reachable without a session.
func Optional(authService port.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := r.Header.Get(TokenHeader); token != "" {
				if userID, err := authService.ValidateSession(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
