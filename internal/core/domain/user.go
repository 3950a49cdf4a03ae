package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session maps an opaque token to a user for a bounded time.
// Sessions exist only between login and logout/expiry.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// Expired reports whether the session is past its TTL at the given instant
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
