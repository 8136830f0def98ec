package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// MessageSvc implements ports.MessageService on top of a message repository.
type MessageSvc struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) *MessageSvc {
	return &MessageSvc{repo: repo, log: log}
}

// Send validates the direct/announcement invariant and persists the message.
func (s *MessageSvc) Send(ctx context.Context, in ports.SendMessageInput) (*domain.Message, error) {
	now := time.Now().UTC()
	msg := &domain.Message{
		ID:             uuid.NewString(),
		SenderID:       in.SenderID,
		RecipientID:    in.RecipientID,
		Subject:        in.Subject,
		Body:           in.Body,
		IsAnnouncement: in.Announce,
		TargetRoles:    in.TargetRoles,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if in.SenderID == "" || in.Subject == "" {
		return nil, domain.ErrInvalidMessage
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Str("sender_id", in.SenderID).Msg("failed to store message")
		return nil, err
	}

	kind := "direct"
	if created.IsAnnouncement {
		kind = "announcement"
	}
	s.log.Info().Str("message_id", created.ID).Str("kind", kind).Msg("message sent")
	return created, nil
}

// Inbox returns every message visible to the viewer, newest first. A
// non-empty query keeps only subject/body substring matches.
func (s *MessageSvc) Inbox(ctx context.Context, viewerID, query string) ([]*domain.Message, error) {
	return s.repo.List(ctx, ports.MessageFilter{ViewerID: viewerID, Search: query})
}

func (s *MessageSvc) Unread(ctx context.Context, viewerID string) ([]*domain.Message, error) {
	return s.repo.List(ctx, ports.MessageFilter{ViewerID: viewerID, UnreadOnly: true})
}

func (s *MessageSvc) Get(ctx context.Context, viewerID, messageID string) (*domain.Message, error) {
	msg, err := s.repo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if !msg.VisibleTo(viewerID) {
		return nil, domain.ErrMessageNotFound
	}
	return msg, nil
}

// MarkRead stamps the read timestamp once and reports whether it did. A
// second call is a no-op success that returns the message with its original
// timestamp.
func (s *MessageSvc) MarkRead(ctx context.Context, viewerID, messageID string) (*domain.Message, bool, error) {
	msg, err := s.repo.FindByID(ctx, messageID)
	if err != nil {
		return nil, false, err
	}
	if !msg.VisibleTo(viewerID) {
		return nil, false, domain.ErrMessageNotFound
	}
	if msg.IsRead() {
		return msg, false, nil
	}
	stamped, err := s.repo.SetReadAt(ctx, messageID, time.Now().UTC())
	if err != nil {
		return nil, false, err
	}
	return stamped, true, nil
}

// Delete removes a message. Only the sender or an admin may delete.
func (s *MessageSvc) Delete(ctx context.Context, viewerID string, viewerRole domain.Role, messageID string) error {
	msg, err := s.repo.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if !domain.CanAccessResource(viewerRole, msg.SenderID, viewerID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, messageID)
}
