package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrMessageNotFound = errors.New("message not found")
var ErrInvalidMessage = errors.New("invalid message")

// Message is either a direct message (exactly one recipient, no target roles)
// or an announcement (no recipient, a non-empty set of target roles).
type Message struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	SenderID       string     `json:"sender_id" bson:"sender_id"`
	RecipientID    string     `json:"recipient_id,omitempty" bson:"recipient_id,omitempty"`
	Subject        string     `json:"subject" bson:"subject"`
	Body           string     `json:"body" bson:"body"`
	IsAnnouncement bool       `json:"is_announcement" bson:"is_announcement"`
	TargetRoles    []Role     `json:"target_roles,omitempty" bson:"target_roles,omitempty"`
	ReadAt         *time.Time `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

// Validate enforces the shape invariant: an announcement has no recipient and
// at least one valid target role; a direct message has a recipient and no
// target roles.
func (m *Message) Validate() error {
	if m.IsAnnouncement {
		if m.RecipientID != "" || len(m.TargetRoles) == 0 {
			return ErrInvalidMessage
		}
		for _, r := range m.TargetRoles {
			if !ValidRole(r) {
				return ErrInvalidMessage
			}
		}
		return nil
	}
	if m.RecipientID == "" || len(m.TargetRoles) > 0 {
		return ErrInvalidMessage
	}
	return nil
}

// VisibleTo reports whether viewerID may see this message. Announcements are
// visible to every viewer; target_roles records the intended audience but is
// not enforced at read time.
func (m *Message) VisibleTo(viewerID string) bool {
	return m.IsAnnouncement || m.SenderID == viewerID || m.RecipientID == viewerID
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// subject or body. An empty query matches everything.
func (m *Message) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(m.Subject), q) ||
		strings.Contains(strings.ToLower(m.Body), q)
}

// IsRead reports whether the message has been marked read. The read state is
// one-way: unread to read, never back.
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}
