package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// ConversationStore is an in-memory storage.ConversationStore.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*models.Conversation // conversationID -> conversation
	pairIndex     map[[2]string]string            // sorted pair -> conversationID
	userIndex     map[string][]string             // userID -> []conversationID
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*models.Conversation),
		pairIndex:     make(map[[2]string]string),
		userIndex:     make(map[string][]string),
	}
}

func sortedPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func (s *ConversationStore) Create(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	pair := sortedPair(userA, userB)
	s.mu.Lock()
	defer s.mu.Unlock()
	// Uniqueness on the unordered pair: hand back the existing record
	// instead of inserting a duplicate.
	if id, ok := s.pairIndex[pair]; ok {
		copied := *s.conversations[id]
		return &copied, nil
	}
	conv := &models.Conversation{
		ID:        uuid.NewString(),
		Members:   pair,
		CreatedAt: time.Now(),
	}
	s.conversations[conv.ID] = conv
	s.pairIndex[pair] = conv.ID
	s.userIndex[userA] = append(s.userIndex[userA], conv.ID)
	if userB != userA {
		s.userIndex[userB] = append(s.userIndex[userB], conv.ID)
	}
	copied := *conv
	return &copied, nil
}

func (s *ConversationStore) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return nil, storage.ErrConversationNotFound
	}
	copied := *conv
	return &copied, nil
}

func (s *ConversationStore) GetBetween(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.pairIndex[sortedPair(userA, userB)]
	if !ok {
		return nil, storage.ErrConversationNotFound
	}
	copied := *s.conversations[id]
	return &copied, nil
}

func (s *ConversationStore) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Conversation
	for _, id := range s.userIndex[userID] {
		copied := *s.conversations[id]
		result = append(result, &copied)
	}
	return result, nil
}
