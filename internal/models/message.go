package models

import "time"

// Message is an immutable entry in a conversation. Messages are only ever
// appended; insertion order is chronological order.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}
