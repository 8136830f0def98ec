package ports

import (
	"context"
	"time"

	"github.com/justdogs/training-system/internal/core/domain"
)

// MessageFilter narrows message listings. ViewerID applies the visibility
// rule (sender == viewer OR recipient == viewer OR announcement); Search is
// a case-insensitive substring match over subject or body; UnreadOnly keeps
// only messages with no read timestamp, scoped to recipient-or-announcement.
type MessageFilter struct {
	ViewerID   string
	Search     string
	UnreadOnly bool
}

// MessageRepository defines persistence operations for messages.
// List results are ordered by creation time descending.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]*domain.Message, error)
	// SetReadAt stamps read_at only when it is not already set. It returns
	// the stored message either way.
	SetReadAt(ctx context.Context, id string, at time.Time) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
