package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", "u1", time.Hour))

	userID, err := s.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = s.Lookup(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	require.NoError(t, s.Save(ctx, "tok-1", "u1", time.Minute))

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := s.Lookup(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", "u1", time.Hour))
	require.NoError(t, s.Delete(ctx, "tok-1"))

	_, err := s.Lookup(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
