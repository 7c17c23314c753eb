// Package chat holds the conversation and message services: find-or-create
// conversation resolution, message persistence and the hand-off to the
// realtime notifier.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// NewConversationID is the placeholder the client uses for a conversation
// that has not been created yet. Listing messages for it yields an empty
// result instead of an error.
const NewConversationID = "new"

// MessageEvent is the payload fanned out to realtime subscribers after a
// message is persisted.
type MessageEvent struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Text           string `json:"message"`
	SenderFullName string `json:"senderFullName"`
	SenderEmail    string `json:"senderEmail"`
}

// Notifier delivers a MessageEvent to every realtime subscriber of a
// conversation. Delivery is fire-and-forget; publishing to a conversation
// with no subscribers is a no-op.
type Notifier interface {
	Publish(conversationID string, ev MessageEvent)
}

// UserSummary is the identity shape returned to clients.
type UserSummary struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ConversationSummary is one entry of a user's conversation list: the
// counterpart's identity plus the conversation id.
type ConversationSummary struct {
	User           UserSummary `json:"user"`
	ConversationID string      `json:"conversationId"`
}

// MessageView is one entry of a conversation's history, sender resolved.
type MessageView struct {
	User UserSummary `json:"user"`
	Text string      `json:"message"`
}

// SendMessageInput carries a send request from either the REST handler or
// the realtime channel. ConversationID and ReceiverID are both optional but
// one of them is required.
type SendMessageInput struct {
	SenderID       string
	Text           string
	ConversationID string
	ReceiverID     string
}

// Service implements the message path: conversation resolution, message
// persistence and realtime notification. The store is the single source of
// truth; the notifier holds no durable state.
type Service struct {
	users         storage.UserStore
	conversations storage.ConversationStore
	messages      storage.MessageStore
	notifier      Notifier
}

func NewService(users storage.UserStore, conversations storage.ConversationStore, messages storage.MessageStore, notifier Notifier) *Service {
	return &Service{
		users:         users,
		conversations: conversations,
		messages:      messages,
		notifier:      notifier,
	}
}

// StartConversation finds the conversation between the two users or creates
// it. Both users must exist.
func (s *Service) StartConversation(ctx context.Context, senderID, receiverID string) (*models.Conversation, error) {
	if senderID == "" || receiverID == "" {
		return nil, fmt.Errorf("%w: senderId and receiverId are required", ErrValidation)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot start a conversation with yourself", ErrValidation)
	}
	for _, id := range []string{senderID, receiverID} {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	if conv, err := s.conversations.GetBetween(ctx, senderID, receiverID); err == nil {
		return conv, nil
	} else if !errors.Is(err, storage.ErrConversationNotFound) {
		return nil, err
	}
	return s.conversations.Create(ctx, senderID, receiverID)
}

// ListConversations returns the user's conversations with the counterpart's
// identity resolved. A conversation whose counterpart no longer exists is
// skipped rather than failing the whole list.
func (s *Service) ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	convs, err := s.conversations.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		counterpart, err := s.users.GetByID(ctx, conv.Counterpart(userID))
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Printf("[CHAT] skipping conversation %s: counterpart missing", conv.ID)
				continue
			}
			return nil, err
		}
		result = append(result, ConversationSummary{
			User:           UserSummary{Email: counterpart.Email, FullName: counterpart.FullName},
			ConversationID: conv.ID,
		})
	}
	return result, nil
}

// SendMessage persists one message and hands it to the notifier. When
// ConversationID is empty a conversation with ReceiverID is resolved
// find-or-create; when it is set, it must reference an existing
// conversation.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.SenderID == "" || strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("%w: senderId and message are required", ErrValidation)
	}

	conversationID := in.ConversationID
	if conversationID == "" || conversationID == NewConversationID {
		if in.ReceiverID == "" {
			return nil, fmt.Errorf("%w: conversationId or receiverId is required", ErrValidation)
		}
		conv, err := s.StartConversation(ctx, in.SenderID, in.ReceiverID)
		if err != nil {
			return nil, err
		}
		conversationID = conv.ID
	} else {
		// Reject orphan messages up front instead of letting a typo'd
		// id create history that no conversation references.
		if _, err := s.conversations.GetByID(ctx, conversationID); err != nil {
			return nil, err
		}
	}

	msg, err := s.messages.Append(ctx, conversationID, in.SenderID, in.Text)
	if err != nil {
		return nil, err
	}

	ev := MessageEvent{
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Text:           msg.Text,
	}
	if sender, err := s.users.GetByID(ctx, msg.SenderID); err == nil {
		ev.SenderFullName = sender.FullName
		ev.SenderEmail = sender.Email
	}
	if s.notifier != nil {
		s.notifier.Publish(msg.ConversationID, ev)
	}
	return msg, nil
}

// ListMessages returns the conversation's history in creation order with
// sender identity resolved. An empty id or the "new" placeholder yields an
// empty list. Messages whose sender record is gone are skipped.
func (s *Service) ListMessages(ctx context.Context, conversationID string) ([]MessageView, error) {
	if conversationID == "" || conversationID == NewConversationID {
		return []MessageView{}, nil
	}
	msgs, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	result := make([]MessageView, 0, len(msgs))
	for _, msg := range msgs {
		sender, err := s.users.GetByID(ctx, msg.SenderID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Printf("[CHAT] skipping message %s: sender missing", msg.ID)
				continue
			}
			return nil, err
		}
		result = append(result, MessageView{
			User: UserSummary{ID: sender.ID, Email: sender.Email, FullName: sender.FullName},
			Text: msg.Text,
		})
	}
	return result, nil
}
