package ports

import (
	"context"
	"time"
)

// SessionStore records active sessions so that sign-out actually revokes a
// token before it expires. Keys are the token's unique session id (jti).
type SessionStore interface {
	// Put creates the session record. It expires after ttl.
	Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Get returns the user id bound to sessionID, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (string, error)
	// Delete destroys the session record. Deleting a missing record is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
