package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort" // Consistent participant order for the unique constraint

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// ConversationStore implements storage.ConversationStore on PostgreSQL.
// Participants are stored in sorted order so the (participant1, participant2)
// unique constraint covers the unordered pair.
type ConversationStore struct {
	db *sql.DB
}

func NewConversationStore(db *sql.DB) *ConversationStore {
	return &ConversationStore{db: db}
}

func canonicalPair(userA, userB string) (string, string) {
	participants := []string{userA, userB}
	sort.Strings(participants)
	return participants[0], participants[1]
}

func (s *ConversationStore) Create(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	p1, p2 := canonicalPair(userA, userB)
	query := `
		INSERT INTO conversations (participant1_id, participant2_id)
		VALUES ($1, $2)
		ON CONFLICT (participant1_id, participant2_id) DO UPDATE
			SET participant1_id = EXCLUDED.participant1_id
		RETURNING id, participant1_id, participant2_id, created_at
	`
	conv := &models.Conversation{}
	err := s.db.QueryRowContext(ctx, query, p1, p2).Scan(
		&conv.ID, &conv.Members[0], &conv.Members[1], &conv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return conv, nil
}

func (s *ConversationStore) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	query := `
		SELECT id, participant1_id, participant2_id, created_at
		FROM conversations
		WHERE id = $1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

func (s *ConversationStore) GetBetween(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	p1, p2 := canonicalPair(userA, userB)
	query := `
		SELECT id, participant1_id, participant2_id, created_at
		FROM conversations
		WHERE participant1_id = $1 AND participant2_id = $2
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, p1, p2))
}

func (s *ConversationStore) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	query := `
		SELECT id, participant1_id, participant2_id, created_at
		FROM conversations
		WHERE participant1_id = $1 OR participant2_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations for user %s: %w", userID, err)
	}
	defer rows.Close()

	var convs []*models.Conversation
	for rows.Next() {
		conv := &models.Conversation{}
		if err := rows.Scan(&conv.ID, &conv.Members[0], &conv.Members[1], &conv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversation row: %w", err)
		}
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversation rows: %w", err)
	}
	return convs, nil
}

func (s *ConversationStore) scanOne(row *sql.Row) (*models.Conversation, error) {
	conv := &models.Conversation{}
	err := row.Scan(&conv.ID, &conv.Members[0], &conv.Members[1], &conv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}
	return conv, nil
}
