package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by Resolve when the token has no live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionManager maps opaque tokens to authenticated account ids.
// Absence of a resolvable session means "anonymous". The backing store
// is the only authority on session lifetime.
type SessionManager interface {
	// Create issues a new token and associates it with accountID.
	Create(ctx context.Context, accountID uuid.UUID) (string, error)

	// Resolve returns the account id the token authenticates, or
	// ErrSessionNotFound. Lookup only, no mutation.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Destroy removes the session. A destruction failure is an
	// operational fault and must be surfaced, not swallowed.
	Destroy(ctx context.Context, token string) error
}
