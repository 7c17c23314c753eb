// Package conversations exposes the conversation endpoints: explicit
// creation and per-user listing.
package conversations

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maheshmeenabalot/chat-app-backend/internal/api"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
)

// Handler serves /api/conversation.
type Handler struct {
	Service *chat.Service
}

// Create finds or creates the conversation between the two users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	conv, err := h.Service.StartConversation(r.Context(), req.SenderID, req.ReceiverID)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, conv)
}

// ListForUser returns the user's conversations with counterpart identity
// resolved.
func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	summaries, err := h.Service.ListConversations(r.Context(), userID)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, summaries)
}
