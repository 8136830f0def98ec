package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// AuthSession is the result of a successful sign-in or sign-up: the bearer
// token identifying the session plus the authenticated user.
type AuthSession struct {
	Token string
	User  *domain.User
}

// SignUpInput carries registration data supplied by callers.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
	Phone    string
}

// ProfileUpdate holds the fields a user may change on their own profile.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
}

// IdentityService authenticates principals and exposes the current user.
// Two implementations exist: an in-memory fixture provider for development
// and a MongoDB-backed provider for production, selected at startup.
type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	SignUp(ctx context.Context, in SignUpInput) (*AuthSession, error)
	// SignOut destroys the session identified by token. Signing out an
	// already-dead session is not an error.
	SignOut(ctx context.Context, token string) error
	// CurrentUser resolves the user bound to token. Returns (nil, nil) when
	// the token is valid but no profile row exists.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	ResetPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, token, newPassword string) error
}
