package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// BookingSvc implements role-scoped booking management.
type BookingSvc struct {
	repo ports.BookingRepository
	dogs ports.DogRepository
	log  zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, dogs ports.DogRepository, log zerolog.Logger) *BookingSvc {
	return &BookingSvc{repo: repo, dogs: dogs, log: log}
}

// Create books a dog with a trainer. Parents may only book their own dogs;
// admins may book on behalf of any parent.
func (s *BookingSvc) Create(ctx context.Context, viewer *domain.User, in ports.CreateBookingInput) (*domain.Booking, error) {
	if !domain.ValidBookingType(in.BookingType) {
		return nil, fmt.Errorf("%w: unknown booking type %q", domain.ErrInvalidBooking, in.BookingType)
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidBooking)
	}

	dog, err := s.dogs.FindByID(ctx, in.DogID)
	if err != nil {
		return nil, err
	}

	parentID := in.ParentID
	if viewer.Role == domain.RoleParent {
		parentID = viewer.ID
	}
	if !domain.CanAccessResource(viewer.Role, dog.OwnerID, parentID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:                  uuid.NewString(),
		DogID:               in.DogID,
		TrainerID:           in.TrainerID,
		ParentID:            dog.OwnerID,
		BookingType:         in.BookingType,
		Status:              domain.BookingPending,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		SpecialInstructions: in.SpecialInstructions,
		Location:            in.Location,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Str("dog_id", in.DogID).Msg("failed to create booking")
		return nil, err
	}
	s.log.Info().Str("booking_id", created.ID).Str("type", string(created.BookingType)).Msg("booking created")
	return created, nil
}

func (s *BookingSvc) Get(ctx context.Context, viewer *domain.User, bookingID string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !s.participates(viewer, booking) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *BookingSvc) List(ctx context.Context, viewer *domain.User, status domain.BookingStatus) ([]*domain.Booking, error) {
	filter := ports.BookingFilter{Status: status}
	switch viewer.Role {
	case domain.RoleParent:
		filter.ParentID = viewer.ID
	case domain.RoleTrainer:
		filter.TrainerID = viewer.ID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus transitions the booking through its state machine. Trainers
// and admins confirm or complete; parents may only cancel their own.
func (s *BookingSvc) UpdateStatus(ctx context.Context, viewer *domain.User, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !s.participates(viewer, booking) {
		return nil, domain.ErrForbidden
	}
	if viewer.Role == domain.RoleParent && next != domain.BookingCancelled {
		return nil, domain.ErrForbidden
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	prev := booking.Status
	booking.Status = next
	booking.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, booking)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("booking_id", bookingID).Str("from", string(prev)).Str("to", string(next)).Msg("booking status updated")
	return updated, nil
}

// participates reports whether the viewer is the booking's parent, its
// trainer, or an admin.
func (s *BookingSvc) participates(viewer *domain.User, b *domain.Booking) bool {
	if viewer.Role == domain.RoleAdmin {
		return true
	}
	return b.ParentID == viewer.ID || b.TrainerID == viewer.ID
}
