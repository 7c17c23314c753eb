// Package messages exposes the message endpoints: sending and history.
package messages

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/maheshmeenabalot/chat-app-backend/internal/api"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
)

// Handler serves /api/messages and /api/message.
type Handler struct {
	Service *chat.Service
}

// Send persists one message. With no conversationId the conversation with
// receiverId is resolved find-or-create; its id comes back in the response.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderID       string `json:"senderId"`
		Message        string `json:"message"`
		ConversationID string `json:"conversationId"`
		ReceiverID     string `json:"receiverId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	msg, err := h.Service.SendMessage(r.Context(), chat.SendMessageInput{
		SenderID:       req.SenderID,
		Text:           req.Message,
		ConversationID: req.ConversationID,
		ReceiverID:     req.ReceiverID,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message":        "Message Sent Successfully",
		"conversationId": msg.ConversationID,
	})
}

// History returns the conversation's messages in creation order. The "new"
// placeholder id yields an empty list.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]
	views, err := h.Service.ListMessages(r.Context(), conversationID)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, views)
}
