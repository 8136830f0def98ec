package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// SendMessageInput carries the data for a new message. RecipientID and
// TargetRoles are mutually exclusive: exactly one must be set, matching
// Announce.
type SendMessageInput struct {
	SenderID    string
	RecipientID string
	Subject     string
	Body        string
	Announce    bool
	TargetRoles []domain.Role
}

// MessageService resolves which mailbox a message belongs to and filters a
// message collection per viewer.
type MessageService interface {
	Send(ctx context.Context, in SendMessageInput) (*domain.Message, error)
	// Inbox returns all messages visible to the viewer, newest first. A
	// non-empty query additionally filters by subject/body substring.
	Inbox(ctx context.Context, viewerID, query string) ([]*domain.Message, error)
	Unread(ctx context.Context, viewerID string) ([]*domain.Message, error)
	Get(ctx context.Context, viewerID, messageID string) (*domain.Message, error)
	// MarkRead stamps the read timestamp and reports whether it did. Marking
	// an already-read message is a no-op success that preserves the original
	// timestamp and reports false.
	MarkRead(ctx context.Context, viewerID, messageID string) (*domain.Message, bool, error)
	// Delete removes a message. Only the sender or an admin may delete.
	Delete(ctx context.Context, viewerID string, viewerRole domain.Role, messageID string) error
}
