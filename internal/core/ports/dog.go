package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// DogFilter narrows dog listings. OwnerID scopes to a single parent.
type DogFilter struct {
	OwnerID string
	Search  string
}

// DogRepository defines persistence operations for dog profiles.
// List results are ordered by creation time descending.
type DogRepository interface {
	Create(ctx context.Context, d *domain.Dog) (*domain.Dog, error)
	FindByID(ctx context.Context, id string) (*domain.Dog, error)
	Update(ctx context.Context, d *domain.Dog) (*domain.Dog, error)
	List(ctx context.Context, filter DogFilter) ([]*domain.Dog, error)
	Delete(ctx context.Context, id string) error
}

// DogInput carries the writable fields of a dog profile.
type DogInput struct {
	Name             string
	Breed            string
	Age              int
	WeightKg         float64
	MedicalNotes     string
	BehavioralNotes  string
	VaccineRecords   string
	Preferences      string
	EmergencyContact *domain.EmergencyContact
	PhotoURL         string
}

// DogService implements role-scoped CRUD over dog profiles: parents only see
// and touch their own dogs, trainers and admins see all.
type DogService interface {
	Create(ctx context.Context, ownerID string, in DogInput) (*domain.Dog, error)
	Get(ctx context.Context, viewer *domain.User, dogID string) (*domain.Dog, error)
	Update(ctx context.Context, viewer *domain.User, dogID string, in DogInput) (*domain.Dog, error)
	List(ctx context.Context, viewer *domain.User, search string) ([]*domain.Dog, error)
	Delete(ctx context.Context, viewer *domain.User, dogID string) error
}
