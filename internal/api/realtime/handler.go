// Package realtime upgrades websocket connections and hands them to the hub.
package realtime

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/ws"
)

// Handler serves the /ws endpoint.
type Handler struct {
	Hub     *ws.Hub
	Service *chat.Service

	// AllowedOrigin is the web client origin permitted to open sockets.
	// Empty allows any origin.
	AllowedOrigin string
}

// ServeWS upgrades the request and starts the client's pumps. The userId
// query parameter identifies the caller; an optional conversationId joins
// that group immediately.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if h.AllowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == h.AllowedOrigin
		},
	}

	userID := r.URL.Query().Get("userId")
	conversationID := r.URL.Query().Get("conversationId")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(h.Hub, conn, h.Service, userID)
	client.Start()
	if conversationID != "" {
		h.Hub.Join(client, conversationID)
	}
	log.Printf("[WS] client connected for user %s", userID)
}
