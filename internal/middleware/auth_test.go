package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshmeenabalot/chat-app-backend/internal/session"
)

func authProtected(t *testing.T, sessions session.Store) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		require.True(t, ok)
		w.Write([]byte(userID))
	})
	return Auth(sessions)(next)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := authProtected(t, session.NewMemoryStore())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsUnknownToken(t *testing.T) {
	handler := authProtected(t, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthResolvesUser(t *testing.T) {
	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Save(context.Background(), "tok-1", "u1", time.Hour))
	handler := authProtected(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}
