package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// UserFilter narrows user listings. Search matches a case-insensitive
// substring of full_name or email.
type UserFilter struct {
	Role   domain.Role
	Search string
}

// UserRepository defines persistence operations for user profiles.
// List results are ordered by creation time descending.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UserService exposes the staff-facing user directory. Listing and deletion
// are admin operations; Get lets trainers look up the parents they work with.
type UserService interface {
	Get(ctx context.Context, viewer *domain.User, userID string) (*domain.User, error)
	List(ctx context.Context, viewer *domain.User, filter UserFilter) ([]*domain.User, error)
	Delete(ctx context.Context, viewer *domain.User, userID string) error
}
