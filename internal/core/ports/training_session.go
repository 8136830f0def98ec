package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// TrainingSessionFilter narrows session listings.
type TrainingSessionFilter struct {
	TrainerID string
	DogID     string
	BookingID string
}

// TrainingSessionRepository defines persistence operations for session records.
// List results are ordered by creation time descending.
type TrainingSessionRepository interface {
	Create(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error)
	FindByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	Update(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error)
	List(ctx context.Context, filter TrainingSessionFilter) ([]*domain.TrainingSession, error)
}

// RecordSessionInput carries the data a trainer records against a booking.
// Ratings are on a 1-5 scale; zero means not rated.
type RecordSessionInput struct {
	BookingID      string
	Attended       bool
	Notes          string
	ProgressRating int
	BehaviorRating int
	Photos         []string
}

// TrainingSessionService lets trainers record session outcomes and everyone
// involved read them back.
type TrainingSessionService interface {
	Record(ctx context.Context, trainer *domain.User, in RecordSessionInput) (*domain.TrainingSession, error)
	Get(ctx context.Context, viewer *domain.User, sessionID string) (*domain.TrainingSession, error)
	List(ctx context.Context, viewer *domain.User) ([]*domain.TrainingSession, error)
}
