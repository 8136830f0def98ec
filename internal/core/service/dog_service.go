package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// DogSvc implements role-scoped CRUD over dog profiles.
type DogSvc struct {
	repo ports.DogRepository
	log  zerolog.Logger
}

func NewDogService(repo ports.DogRepository, log zerolog.Logger) *DogSvc {
	return &DogSvc{repo: repo, log: log}
}

func (s *DogSvc) Create(ctx context.Context, ownerID string, in ports.DogInput) (*domain.Dog, error) {
	now := time.Now().UTC()
	dog := &domain.Dog{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Breed:            in.Breed,
		Age:              in.Age,
		WeightKg:         in.WeightKg,
		OwnerID:          ownerID,
		MedicalNotes:     in.MedicalNotes,
		BehavioralNotes:  in.BehavioralNotes,
		VaccineRecords:   in.VaccineRecords,
		Preferences:      in.Preferences,
		EmergencyContact: in.EmergencyContact,
		PhotoURL:         in.PhotoURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, dog)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create dog")
		return nil, err
	}
	s.log.Info().Str("dog_id", created.ID).Str("owner_id", ownerID).Msg("dog created")
	return created, nil
}

func (s *DogSvc) Get(ctx context.Context, viewer *domain.User, dogID string) (*domain.Dog, error) {
	dog, err := s.repo.FindByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	// Trainers see every dog; parents only their own.
	if viewer.Role != domain.RoleTrainer && !domain.CanAccessResource(viewer.Role, dog.OwnerID, viewer.ID) {
		return nil, domain.ErrForbidden
	}
	return dog, nil
}

func (s *DogSvc) Update(ctx context.Context, viewer *domain.User, dogID string, in ports.DogInput) (*domain.Dog, error) {
	dog, err := s.repo.FindByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessResource(viewer.Role, dog.OwnerID, viewer.ID) {
		return nil, domain.ErrForbidden
	}

	dog.Name = in.Name
	dog.Breed = in.Breed
	dog.Age = in.Age
	dog.WeightKg = in.WeightKg
	dog.MedicalNotes = in.MedicalNotes
	dog.BehavioralNotes = in.BehavioralNotes
	dog.VaccineRecords = in.VaccineRecords
	dog.Preferences = in.Preferences
	dog.EmergencyContact = in.EmergencyContact
	dog.PhotoURL = in.PhotoURL
	dog.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, dog)
}

func (s *DogSvc) List(ctx context.Context, viewer *domain.User, search string) ([]*domain.Dog, error) {
	filter := ports.DogFilter{Search: search}
	if viewer.Role == domain.RoleParent {
		filter.OwnerID = viewer.ID
	}
	return s.repo.List(ctx, filter)
}

func (s *DogSvc) Delete(ctx context.Context, viewer *domain.User, dogID string) error {
	dog, err := s.repo.FindByID(ctx, dogID)
	if err != nil {
		return err
	}
	if !domain.CanAccessResource(viewer.Role, dog.OwnerID, viewer.ID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, dogID)
}
