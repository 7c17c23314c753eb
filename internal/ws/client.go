package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 4096
)

// MessageSender is the slice of the chat service the realtime channel needs.
// Inbound send_message events go through the same path as REST sends, so
// persistence and notification never disagree.
type MessageSender interface {
	SendMessage(ctx context.Context, in chat.SendMessageInput) (*models.Message, error)
}

// Client is one websocket connection tracked by the hub.
type Client struct {
	UserID string

	hub    *Hub
	conn   *websocket.Conn
	sender MessageSender
	send   chan []byte
}

// NewClient wraps an upgraded websocket connection for the given user.
func NewClient(hub *Hub, conn *websocket.Conn, sender MessageSender, userID string) *Client {
	return &Client{
		UserID: userID,
		hub:    hub,
		conn:   conn,
		sender: sender,
		send:   make(chan []byte, 256),
	}
}

// Start registers the client with the hub and launches the read and write
// pumps. It returns immediately.
func (c *Client) Start() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(readLimit)

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] read error for user %s: %v", c.UserID, err)
			}
			return
		}
		c.handleFrame(raw)
	}
}

func (c *Client) handleFrame(raw []byte) {
	var in inboundEnvelope
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Printf("[WS] dropping malformed frame from user %s: %v", c.UserID, err)
		return
	}

	switch in.Event {
	case EventJoinConversation:
		conversationID := in.ConversationID
		if conversationID == "" && len(in.Data) > 0 {
			// The client may also send the id as a bare data string.
			_ = json.Unmarshal(in.Data, &conversationID)
		}
		if conversationID == "" {
			return
		}
		c.hub.Join(c, conversationID)
	case EventSendMessage:
		var payload sendMessagePayload
		if err := json.Unmarshal(in.Data, &payload); err != nil {
			log.Printf("[WS] dropping malformed send_message from user %s: %v", c.UserID, err)
			return
		}
		// Same service call as POST /api/messages; the service persists
		// first and then publishes back through the hub.
		_, err := c.sender.SendMessage(context.Background(), chat.SendMessageInput{
			SenderID:       payload.SenderID,
			Text:           payload.Text,
			ConversationID: payload.ConversationID,
			ReceiverID:     payload.ReceiverID,
		})
		if err != nil {
			log.Printf("[WS] send_message from user %s rejected: %v", c.UserID, err)
		}
	default:
		log.Printf("[WS] unknown event %q from user %s", in.Event, c.UserID)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
