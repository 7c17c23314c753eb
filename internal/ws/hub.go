// Package ws is the realtime layer: a hub that groups websocket clients by
// conversation id and fans persisted messages out to every group member.
// The hub holds no durable state; the store remains the single source of
// truth and the hub is a pure notification layer.
package ws

import (
	"encoding/json"
	"log"

	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
)

type joinRequest struct {
	client         *Client
	conversationID string
}

type broadcastRequest struct {
	conversationID string
	data           []byte
}

// Hub owns the conversation-group membership table. All mutation happens on
// the Run goroutine, so join/publish/disconnect need no locking. Create one
// at startup, run it, and inject it where needed.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	joins      chan joinRequest
	broadcast  chan broadcastRequest
	stop       chan struct{}

	groups     map[string]map[*Client]bool // conversationID -> clients
	membership map[*Client]string          // client -> current conversationID
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		joins:      make(chan joinRequest),
		broadcast:  make(chan broadcastRequest, 64),
		stop:       make(chan struct{}),
		groups:     make(map[string]map[*Client]bool),
		membership: make(map[*Client]string),
	}
}

// Run processes hub events until Close is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.membership[client] = ""
		case client := <-h.unregister:
			h.drop(client)
		case req := <-h.joins:
			h.join(req.client, req.conversationID)
		case req := <-h.broadcast:
			h.fanOut(req.conversationID, req.data)
		case <-h.stop:
			for client := range h.membership {
				h.drop(client)
			}
			return
		}
	}
}

// Close tears the hub down and disconnects every client.
func (h *Hub) Close() {
	close(h.stop)
}

// Register adds a connection to the hub. The connection belongs to no group
// until it joins one.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a connection and releases its group membership.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Join subscribes the connection to the conversation's group. A connection
// belongs to at most one group: joining a different conversation leaves the
// previous group implicitly. Joining the current group is a no-op.
func (h *Hub) Join(c *Client, conversationID string) {
	h.joins <- joinRequest{client: c, conversationID: conversationID}
}

// Publish implements chat.Notifier: the event is wrapped in a new_message
// envelope and delivered to every current member of the conversation's
// group. No subscribers is a normal state, not an error.
func (h *Hub) Publish(conversationID string, ev chat.MessageEvent) {
	data, err := json.Marshal(envelope{Event: EventNewMessage, Data: ev})
	if err != nil {
		log.Printf("[WS] failed to encode message event: %v", err)
		return
	}
	h.broadcast <- broadcastRequest{conversationID: conversationID, data: data}
}

func (h *Hub) join(c *Client, conversationID string) {
	current, tracked := h.membership[c]
	if !tracked || current == conversationID {
		return
	}
	h.leaveGroup(c, current)
	group := h.groups[conversationID]
	if group == nil {
		group = make(map[*Client]bool)
		h.groups[conversationID] = group
	}
	group[c] = true
	h.membership[c] = conversationID
}

func (h *Hub) drop(c *Client) {
	current, tracked := h.membership[c]
	if !tracked {
		return
	}
	h.leaveGroup(c, current)
	delete(h.membership, c)
	close(c.send)
}

func (h *Hub) leaveGroup(c *Client, conversationID string) {
	if conversationID == "" {
		return
	}
	if group, ok := h.groups[conversationID]; ok {
		delete(group, c)
		if len(group) == 0 {
			delete(h.groups, conversationID)
		}
	}
}

func (h *Hub) fanOut(conversationID string, data []byte) {
	for client := range h.groups[conversationID] {
		select {
		case client.send <- data:
		default:
			// Slow consumer: drop the connection rather than block
			// delivery to the rest of the group.
			h.leaveGroup(client, conversationID)
			delete(h.membership, client)
			close(client.send)
		}
	}
}
