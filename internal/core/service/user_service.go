package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// UserSvc implements the staff-facing user directory.
type UserSvc struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserSvc {
	return &UserSvc{repo: repo, log: log}
}

func (s *UserSvc) Get(ctx context.Context, viewer *domain.User, userID string) (*domain.User, error) {
	// Own profile is always visible; anything else needs staff rank.
	if viewer.ID != userID && !domain.HasPermission(viewer.Role, domain.RoleTrainer) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, userID)
}

func (s *UserSvc) List(ctx context.Context, viewer *domain.User, filter ports.UserFilter) ([]*domain.User, error) {
	if !domain.HasPermission(viewer.Role, domain.RoleTrainer) {
		return nil, domain.ErrForbidden
	}
	// Trainers browse the parent directory only; admins see everyone.
	if viewer.Role == domain.RoleTrainer {
		filter.Role = domain.RoleParent
	}
	return s.repo.List(ctx, filter)
}

func (s *UserSvc) Delete(ctx context.Context, viewer *domain.User, userID string) error {
	if viewer.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if viewer.ID == userID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("deleted_by", viewer.ID).Msg("user deleted")
	return nil
}
