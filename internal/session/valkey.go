package session

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const keyPrefix = "session:"

// ValkeyStore keeps sessions in Valkey with server-side expiry.
type ValkeyStore struct {
	client valkey.Client
}

// NewValkeyStore connects to the Valkey instance at addr (host:port).
func NewValkeyStore(addr string) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("connecting to valkey at %s: %w", addr, err)
	}
	return &ValkeyStore{client: client}, nil
}

func (s *ValkeyStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	cmd := s.client.B().Set().Key(keyPrefix + token).Value(userID).Ex(ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Lookup(ctx context.Context, token string) (string, error) {
	cmd := s.client.B().Get().Key(keyPrefix + token).Build()
	userID, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("looking up session: %w", err)
	}
	return userID, nil
}

func (s *ValkeyStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(keyPrefix + token).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Close releases the underlying Valkey connection.
func (s *ValkeyStore) Close() {
	s.client.Close()
}
