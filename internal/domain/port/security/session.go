package security

import (
	"context"
	"time"
)

// Session binds an opaque session id to an authenticated user
type Session struct {
	ID        string
	UserID    uint64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore persists active sessions
type SessionStore interface {
	// Save stores the session until its expiry
	Save(ctx context.Context, session Session) error

	// Get loads a live session.
	// Returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session; deleting an unknown id is not an error
	Delete(ctx context.Context, id string) error
}

// SessionManager issues and resolves the token carried by the session cookie
type SessionManager interface {
	// Issue creates a session for userID and returns its signed token
	Issue(ctx context.Context, userID uint64) (string, error)

	// Resolve verifies a token and returns the live session behind it.
	// Returns ErrSessionNotFound for a tampered, expired or revoked token.
	Resolve(ctx context.Context, token string) (*Session, error)

	// Revoke ends the session behind token
	Revoke(ctx context.Context, token string) error
}
