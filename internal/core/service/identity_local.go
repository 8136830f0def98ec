package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// demoAccount is a fixed, pre-defined user + password pair usable only with
// the local provider.
type demoAccount struct {
	user     domain.User
	password string
}

func demoAccounts() []demoAccount {
	now := time.Now().UTC()
	return []demoAccount{
		{
			user: domain.User{
				ID: "demo-admin", Email: "admin@justdogs.co.za", FullName: "Admin User",
				Role: domain.RoleAdmin, Phone: "+27 82 123 4567", CreatedAt: now, UpdatedAt: now,
			},
			password: "admin123",
		},
		{
			user: domain.User{
				ID: "demo-trainer", Email: "trainer@justdogs.co.za", FullName: "Trainer User",
				Role: domain.RoleTrainer, Phone: "+27 83 987 6543", CreatedAt: now, UpdatedAt: now,
			},
			password: "trainer123",
		},
		{
			user: domain.User{
				ID: "demo-parent", Email: "parent@justdogs.co.za", FullName: "Parent User",
				Role: domain.RoleParent, Phone: "+27 84 555 1234", CreatedAt: now, UpdatedAt: now,
			},
			password: "parent123",
		},
	}
}

// LocalIdentity is the development fixture provider. It keeps everything in
// memory: seeded demo accounts, pending registrations awaiting their first
// sign-in, and one session slot per issued token. It never touches MongoDB
// or Redis and must stay out of production deployments.
//
// Known dev-only quirk, kept deliberately: passwords are not persisted for
// pending registrations, so the first sign-in after sign-up accepts any
// password. The pending record is consumed by that sign-in; later attempts
// fall through to strict demo-account matching.
type LocalIdentity struct {
	mu        sync.Mutex
	users     map[string]*domain.User // keyed by email
	passwords map[string]string       // keyed by email; demo accounts only
	pending   map[string]*domain.User // keyed by email
	sessions  map[string]*domain.User // keyed by token
	log       zerolog.Logger
}

func NewLocalIdentity(log zerolog.Logger) *LocalIdentity {
	s := &LocalIdentity{
		users:     make(map[string]*domain.User),
		passwords: make(map[string]string),
		pending:   make(map[string]*domain.User),
		sessions:  make(map[string]*domain.User),
		log:       log,
	}
	for _, acc := range demoAccounts() {
		u := acc.user
		s.users[u.Email] = &u
		s.passwords[u.Email] = acc.password
	}
	return s
}

func (s *LocalIdentity) SignIn(_ context.Context, email, password string) (*ports.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Pending registrations win over demo accounts and accept any password.
	if user, ok := s.pending[email]; ok {
		delete(s.pending, email)
		return s.openSession(user), nil
	}

	user, ok := s.users[email]
	fixedPassword, seeded := s.passwords[email]
	if !ok || !seeded || fixedPassword != password {
		return nil, domain.ErrInvalidCredentials
	}
	return s.openSession(user), nil
}

func (s *LocalIdentity) SignUp(_ context.Context, in ports.SignUpInput) (*ports.AuthSession, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[in.Email]; exists {
		return nil, domain.ErrUserExists
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      in.Role,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	pending := *user
	s.pending[in.Email] = &pending
	s.users[in.Email] = user

	s.log.Info().Str("email", in.Email).Str("role", string(in.Role)).Msg("local registration")
	return s.openSession(user), nil
}

func (s *LocalIdentity) SignOut(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *LocalIdentity) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

// UpdateProfile merges fields into the live session record. With no live
// session for the user there is nothing to update.
func (s *LocalIdentity) UpdateProfile(_ context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.sessions {
		if user.ID != userID {
			continue
		}
		if update.FullName != nil {
			user.FullName = *update.FullName
		}
		if update.Phone != nil {
			user.Phone = *update.Phone
		}
		if update.AvatarURL != nil {
			user.AvatarURL = *update.AvatarURL
		}
		user.UpdatedAt = time.Now().UTC()

		if stored, ok := s.users[user.Email]; ok {
			*stored = *user
		}
		clone := *user
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

// ResetPassword simulates success; nothing is delivered in local mode.
func (s *LocalIdentity) ResetPassword(_ context.Context, email string) error {
	s.log.Info().Str("email", email).Msg("local password reset (simulated)")
	return nil
}

// UpdatePassword simulates success; local passwords are fixtures.
func (s *LocalIdentity) UpdatePassword(_ context.Context, _, _ string) error {
	s.log.Info().Msg("local password update (simulated)")
	return nil
}

// openSession issues an opaque token bound to its own copy of the user.
// Callers must hold s.mu.
func (s *LocalIdentity) openSession(user *domain.User) *ports.AuthSession {
	token := uuid.NewString()
	clone := *user
	s.sessions[token] = &clone
	result := clone
	return &ports.AuthSession{Token: token, User: &result}
}
