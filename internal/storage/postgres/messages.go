package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
)

// MessageStore implements storage.MessageStore on PostgreSQL.
type MessageStore struct {
	db *sql.DB
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

func (s *MessageStore) Append(ctx context.Context, conversationID, senderID, text string) (*models.Message, error) {
	query := `
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, conversation_id, sender_id, content, created_at
	`
	msg := &models.Message{}
	err := s.db.QueryRowContext(ctx, query, conversationID, senderID, text).Scan(
		&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Text, &msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}
	return msg, nil
}

func (s *MessageStore) ListByConversation(ctx context.Context, conversationID string) ([]*models.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY seq ASC
	`
	rows, err := s.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages for conversation %s: %w", conversationID, err)
	}
	defer rows.Close()

	var msgs []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}
	return msgs, nil
}
