// Package storage defines the persistence contracts for the three record
// types and the sentinel errors implementations report.
package storage

import (
	"context"
	"errors"

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrConversationNotFound = errors.New("conversation not found")
)

// UserStore persists user accounts.
type UserStore interface {
	// Create inserts a new user, assigning an ID when empty. Returns
	// ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	// SetSessionToken records the last issued token on the user record.
	SetSessionToken(ctx context.Context, id, token string) error
}

// ConversationStore persists conversations. The member pair is unordered;
// implementations canonicalize it by sorting so a pair maps to at most one
// record.
type ConversationStore interface {
	Create(ctx context.Context, userA, userB string) (*models.Conversation, error)
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	// GetBetween finds the conversation for the unordered pair, or
	// ErrConversationNotFound.
	GetBetween(ctx context.Context, userA, userB string) (*models.Conversation, error)
	// ListForUser returns every conversation the user is a member of, in
	// insertion order.
	ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error)
}

// MessageStore persists messages. Messages are append-only.
type MessageStore interface {
	Append(ctx context.Context, conversationID, senderID, text string) (*models.Message, error)
	// ListByConversation returns the conversation's messages in creation
	// order.
	ListByConversation(ctx context.Context, conversationID string) ([]*models.Message, error)
}
