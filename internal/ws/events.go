package ws

import "encoding/json"

// Event names carried in the wire envelope.
const (
	EventJoinConversation = "join_conversation"
	EventSendMessage      = "send_message"
	EventNewMessage       = "new_message"
)

// envelope is the wire frame for outbound realtime events.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// inboundEnvelope is the decoded form of a client frame. Data stays raw
// until the event name selects its shape.
type inboundEnvelope struct {
	Event          string          `json:"event"`
	ConversationID string          `json:"conversationId"`
	Data           json.RawMessage `json:"data"`
}

// sendMessagePayload is the data of an inbound send_message event.
type sendMessagePayload struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	ReceiverID     string `json:"receiverId"`
	Text           string `json:"text"`
}
