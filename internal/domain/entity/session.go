package entity

import "github.com/google/uuid"

// Session associates an opaque token with an authenticated account.
// Sessions are created on signup/login, destroyed on logout, and are
// not persisted beyond the session store's own lifetime.
type Session struct {
	Token     string
	AccountID uuid.UUID
}
