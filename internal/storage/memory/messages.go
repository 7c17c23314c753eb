package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
)

// MessageStore is an in-memory storage.MessageStore. Messages are kept per
// conversation in append order, which is also chronological order.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message // conversationID -> messages
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[string][]models.Message),
	}
}

func (s *MessageStore) Append(ctx context.Context, conversationID, senderID, text string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	copied := msg
	return &copied, nil
}

func (s *MessageStore) ListByConversation(ctx context.Context, conversationID string) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.messages[conversationID]
	result := make([]*models.Message, 0, len(stored))
	for i := range stored {
		copied := stored[i]
		result = append(result, &copied)
	}
	return result, nil
}
