// Package session tracks issued login tokens so authenticated endpoints can
// resolve the caller without re-verifying credentials.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Store maps an opaque session token to the user it was issued for.
type Store interface {
	// Save records the token for the user with the given time-to-live.
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Lookup resolves a token to its user id, or ErrSessionNotFound when
	// the token is unknown or expired.
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
