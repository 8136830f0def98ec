package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// TrainingSessionSvc lets trainers record what happened during a booking.
type TrainingSessionSvc struct {
	repo     ports.TrainingSessionRepository
	bookings ports.BookingRepository
	log      zerolog.Logger
}

func NewTrainingSessionService(repo ports.TrainingSessionRepository, bookings ports.BookingRepository, log zerolog.Logger) *TrainingSessionSvc {
	return &TrainingSessionSvc{repo: repo, bookings: bookings, log: log}
}

// Record creates a session record against a booking. Only the booking's
// trainer (or an admin) may record; the dog reference is taken from the
// booking, not the caller.
func (s *TrainingSessionSvc) Record(ctx context.Context, trainer *domain.User, in ports.RecordSessionInput) (*domain.TrainingSession, error) {
	if err := validRating(in.ProgressRating); err != nil {
		return nil, err
	}
	if err := validRating(in.BehaviorRating); err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if trainer.Role != domain.RoleAdmin && booking.TrainerID != trainer.ID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	session := &domain.TrainingSession{
		ID:             uuid.NewString(),
		BookingID:      booking.ID,
		TrainerID:      booking.TrainerID,
		DogID:          booking.DogID,
		Attended:       in.Attended,
		Notes:          in.Notes,
		ProgressRating: in.ProgressRating,
		BehaviorRating: in.BehaviorRating,
		Photos:         in.Photos,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, session)
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to record session")
		return nil, err
	}
	s.log.Info().Str("session_id", created.ID).Str("booking_id", booking.ID).Msg("training session recorded")
	return created, nil
}

func (s *TrainingSessionSvc) Get(ctx context.Context, viewer *domain.User, sessionID string) (*domain.TrainingSession, error) {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if viewer.Role == domain.RoleParent {
		booking, err := s.bookings.FindByID(ctx, session.BookingID)
		if err != nil || booking.ParentID != viewer.ID {
			return nil, domain.ErrForbidden
		}
	}
	return session, nil
}

func (s *TrainingSessionSvc) List(ctx context.Context, viewer *domain.User) ([]*domain.TrainingSession, error) {
	filter := ports.TrainingSessionFilter{}
	if viewer.Role == domain.RoleTrainer {
		filter.TrainerID = viewer.ID
	}
	sessions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if viewer.Role != domain.RoleParent {
		return sessions, nil
	}

	// Parents only see sessions for their own bookings.
	var visible []*domain.TrainingSession
	for _, session := range sessions {
		booking, err := s.bookings.FindByID(ctx, session.BookingID)
		if err != nil {
			continue
		}
		if booking.ParentID == viewer.ID {
			visible = append(visible, session)
		}
	}
	return visible, nil
}

func validRating(r int) error {
	if r < 0 || r > 5 {
		return domain.ErrInvalidRating
	}
	return nil
}
