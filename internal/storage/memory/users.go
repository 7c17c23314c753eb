package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// UserStore is an in-memory storage.UserStore for development and tests.
type UserStore struct {
	mu         sync.RWMutex
	users      map[string]*models.User // userID -> user
	emailIndex map[string]string       // email -> userID
	order      []string                // insertion order of userIDs
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[string]*models.User),
		emailIndex: make(map[string]string),
	}
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emailIndex[u.Email]; exists {
		return storage.ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	stored := *u
	s.users[u.ID] = &stored
	s.emailIndex[u.Email] = u.ID
	s.order = append(s.order, u.ID)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.users[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *UserStore) SetSessionToken(ctx context.Context, id, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return storage.ErrUserNotFound
	}
	u.SessionToken = token
	return nil
}
