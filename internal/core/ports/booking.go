package ports

import (
	"context"
	"time"

	"github.com/justdogs/training-system/internal/core/domain"
)

// BookingFilter narrows booking listings to one participant and/or status.
type BookingFilter struct {
	ParentID  string
	TrainerID string
	DogID     string
	Status    domain.BookingStatus
	From      time.Time
	To        time.Time
}

// BookingRepository defines persistence operations for bookings.
// List results are ordered by creation time descending.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// CreateBookingInput carries the data for a new booking.
type CreateBookingInput struct {
	DogID               string
	TrainerID           string
	ParentID            string
	BookingType         domain.BookingType
	StartTime           time.Time
	EndTime             time.Time
	SpecialInstructions string
	Location            string
}

// BookingService implements role-scoped booking management. Status changes
// follow the pending/confirmed/completed/cancelled state machine.
type BookingService interface {
	Create(ctx context.Context, viewer *domain.User, in CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, viewer *domain.User, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, viewer *domain.User, status domain.BookingStatus) ([]*domain.Booking, error)
	// UpdateStatus transitions the booking. Invalid transitions fail with
	// domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, viewer *domain.User, bookingID string, next domain.BookingStatus) (*domain.Booking, error)
}
