package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

func TestUserStoreDuplicateEmail(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{FullName: "A", Email: "a@example.com"}))
	err := s.Create(ctx, &models.User{FullName: "B", Email: "a@example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestUserStoreLookups(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := &models.User{FullName: "A", Email: "a@example.com"}
	require.NoError(t, s.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	byID, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	byEmail, err := s.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStoreSetSessionToken(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := &models.User{FullName: "A", Email: "a@example.com"}
	require.NoError(t, s.Create(ctx, u))
	require.NoError(t, s.SetSessionToken(ctx, u.ID, "tok-1"))

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.SessionToken)

	assert.ErrorIs(t, s.SetSessionToken(ctx, "missing", "tok"), storage.ErrUserNotFound)
}

func TestConversationStorePairUniqueness(t *testing.T) {
	s := NewConversationStore()
	ctx := context.Background()

	first, err := s.Create(ctx, "u1", "u2")
	require.NoError(t, err)

	// Creating the reversed pair returns the existing record.
	second, err := s.Create(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	between, err := s.GetBetween(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, between.ID)

	list, err := s.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConversationStoreNotFound(t *testing.T) {
	s := NewConversationStore()
	ctx := context.Background()

	_, err := s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrConversationNotFound)

	_, err = s.GetBetween(ctx, "u1", "u2")
	assert.ErrorIs(t, err, storage.ErrConversationNotFound)
}

func TestMessageStoreAppendOrder(t *testing.T) {
	s := NewMessageStore()
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := s.Append(ctx, "c1", "u1", text)
		require.NoError(t, err)
	}
	_, err := s.Append(ctx, "c2", "u1", "elsewhere")
	require.NoError(t, err)

	msgs, err := s.ListByConversation(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)
	assert.Equal(t, "three", msgs[2].Text)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
}
