package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/maheshmeenabalot/chat-app-backend/internal/session"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth resolves the caller from the bearer token via the session store and
// stamps the user id into the request context. Requests without a valid
// session get a 401.
func Auth(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
			if token == "" {
				http.Error(w, "Missing authorization token", http.StatusUnauthorized)
				return
			}
			userID, err := sessions.Lookup(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}

// UserID returns the authenticated user id stamped by Auth, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
