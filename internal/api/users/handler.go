// Package users exposes the user directory endpoints the web client uses to
// pick a chat counterpart.
package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maheshmeenabalot/chat-app-backend/internal/api"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// Handler serves /api/users and /api/user-id-by-email.
type Handler struct {
	Users storage.UserStore
}

type userEntry struct {
	User   chat.UserSummary `json:"user"`
	UserID string           `json:"userId"`
}

// List returns every registered user's public identity.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		api.WriteError(w, err)
		return
	}
	entries := make([]userEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, userEntry{
			User:   chat.UserSummary{Email: u.Email, FullName: u.FullName},
			UserID: u.ID,
		})
	}
	api.WriteJSON(w, http.StatusOK, entries)
}

// IDByEmail resolves an email address to a user id.
func (h *Handler) IDByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		api.WriteMessage(w, http.StatusBadRequest, "Email is required")
		return
	}
	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"id": user.ID})
}
