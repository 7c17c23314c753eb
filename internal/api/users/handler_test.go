package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshmeenabalot/chat-app-backend/internal/api/users"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage/memory"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := memory.NewUserStore()
	for _, u := range []models.User{
		{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"},
		{ID: "u2", FullName: "Alan Turing", Email: "alan@example.com"},
	} {
		user := u
		require.NoError(t, store.Create(context.Background(), &user))
	}
	r := mux.NewRouter()
	users.RegisterRoutes(r, &users.Handler{Users: store})
	return r
}

func TestListUsers(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []struct {
		User struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
		} `json:"user"`
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, "ada@example.com", entries[0].User.Email)
	assert.Equal(t, "u2", entries[1].UserID)
}

func TestIDByEmail(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user-id-by-email/ada@example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
}

func TestIDByEmailNotFound(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user-id-by-email/ghost@example.com", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
