package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

type stubDogRepo struct {
	byID map[string]*domain.Dog
}

func newStubDogRepo() *stubDogRepo {
	return &stubDogRepo{byID: make(map[string]*domain.Dog)}
}

func (r *stubDogRepo) Create(_ context.Context, d *domain.Dog) (*domain.Dog, error) {
	r.byID[d.ID] = d
	return d, nil
}

func (r *stubDogRepo) FindByID(_ context.Context, id string) (*domain.Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDogRepo) Update(_ context.Context, d *domain.Dog) (*domain.Dog, error) {
	r.byID[d.ID] = d
	return d, nil
}

func (r *stubDogRepo) List(_ context.Context, filter ports.DogFilter) ([]*domain.Dog, error) {
	var out []*domain.Dog
	for _, d := range r.byID {
		if filter.OwnerID != "" && d.OwnerID != filter.OwnerID {
			continue
		}
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubDogRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type stubBookingRepo struct {
	byID map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	clone := *b
	r.byID[b.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := r.byID[b.ID]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	r.byID[b.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) List(_ context.Context, filter ports.BookingFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if filter.ParentID != "" && b.ParentID != filter.ParentID {
			continue
		}
		if filter.TrainerID != "" && b.TrainerID != filter.TrainerID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if !filter.From.IsZero() && b.StartTime.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !b.StartTime.Before(filter.To) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func newBookingService() (*BookingSvc, *stubBookingRepo, *stubDogRepo) {
	bookings := newStubBookingRepo()
	dogs := newStubDogRepo()
	return NewBookingService(bookings, dogs, zerolog.Nop()), bookings, dogs
}

func bookingWindow() (time.Time, time.Time) {
	start := time.Now().UTC().Add(24 * time.Hour)
	return start, start.Add(time.Hour)
}

func TestBookingService_Create(t *testing.T) {
	svc, _, dogs := newBookingService()
	dogs.byID["dog-1"] = &domain.Dog{ID: "dog-1", OwnerID: "parent-1"}
	parent := &domain.User{ID: "parent-1", Role: domain.RoleParent}

	start, end := bookingWindow()
	booking, err := svc.Create(context.Background(), parent, ports.CreateBookingInput{
		DogID: "dog-1", TrainerID: "trainer-1", BookingType: domain.BookingTraining,
		StartTime: start, EndTime: end,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("new booking must start pending, got %s", booking.Status)
	}
	if booking.ParentID != "parent-1" {
		t.Fatalf("parent id must come from the dog's owner, got %s", booking.ParentID)
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	svc, _, dogs := newBookingService()
	dogs.byID["dog-1"] = &domain.Dog{ID: "dog-1", OwnerID: "parent-1"}
	parent := &domain.User{ID: "parent-1", Role: domain.RoleParent}
	ctx := context.Background()
	start, end := bookingWindow()

	if _, err := svc.Create(ctx, parent, ports.CreateBookingInput{
		DogID: "dog-1", TrainerID: "t", BookingType: "grooming", StartTime: start, EndTime: end,
	}); !errors.Is(err, domain.ErrInvalidBooking) {
		t.Fatalf("expected ErrInvalidBooking for unknown type, got %v", err)
	}

	if _, err := svc.Create(ctx, parent, ports.CreateBookingInput{
		DogID: "dog-1", TrainerID: "t", BookingType: domain.BookingTraining, StartTime: end, EndTime: start,
	}); !errors.Is(err, domain.ErrInvalidBooking) {
		t.Fatalf("expected ErrInvalidBooking for reversed times, got %v", err)
	}

	if _, err := svc.Create(ctx, parent, ports.CreateBookingInput{
		DogID: "missing", TrainerID: "t", BookingType: domain.BookingTraining, StartTime: start, EndTime: end,
	}); !errors.Is(err, domain.ErrDogNotFound) {
		t.Fatalf("expected ErrDogNotFound, got %v", err)
	}
}

func TestBookingService_Create_OtherParentsDog(t *testing.T) {
	svc, _, dogs := newBookingService()
	dogs.byID["dog-1"] = &domain.Dog{ID: "dog-1", OwnerID: "parent-1"}
	intruder := &domain.User{ID: "parent-2", Role: domain.RoleParent}

	start, end := bookingWindow()
	if _, err := svc.Create(context.Background(), intruder, ports.CreateBookingInput{
		DogID: "dog-1", TrainerID: "t", BookingType: domain.BookingDaycare, StartTime: start, EndTime: end,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admins may book on any parent's behalf.
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	if _, err := svc.Create(context.Background(), admin, ports.CreateBookingInput{
		DogID: "dog-1", TrainerID: "t", ParentID: "parent-1",
		BookingType: domain.BookingDaycare, StartTime: start, EndTime: end,
	}); err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
}

func TestBookingService_UpdateStatus_Lifecycle(t *testing.T) {
	svc, bookings, _ := newBookingService()
	bookings.byID["b1"] = &domain.Booking{
		ID: "b1", ParentID: "parent-1", TrainerID: "trainer-1", Status: domain.BookingPending,
	}
	trainer := &domain.User{ID: "trainer-1", Role: domain.RoleTrainer}
	ctx := context.Background()

	confirmed, err := svc.UpdateStatus(ctx, trainer, "b1", domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != domain.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	if _, err := svc.UpdateStatus(ctx, trainer, "b1", domain.BookingPending); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	done, err := svc.UpdateStatus(ctx, trainer, "b1", domain.BookingCompleted)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != domain.BookingCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}

	// Completed is terminal.
	if _, err := svc.UpdateStatus(ctx, trainer, "b1", domain.BookingCancelled); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from completed, got %v", err)
	}
}

func TestBookingService_UpdateStatus_ParentOnlyCancels(t *testing.T) {
	svc, bookings, _ := newBookingService()
	bookings.byID["b1"] = &domain.Booking{
		ID: "b1", ParentID: "parent-1", TrainerID: "trainer-1", Status: domain.BookingPending,
	}
	parent := &domain.User{ID: "parent-1", Role: domain.RoleParent}
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, parent, "b1", domain.BookingConfirmed); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("parent must not confirm, got %v", err)
	}
	cancelled, err := svc.UpdateStatus(ctx, parent, "b1", domain.BookingCancelled)
	if err != nil {
		t.Fatalf("parent cancel failed: %v", err)
	}
	if cancelled.Status != domain.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
}

func TestBookingService_GetAndList_Scoping(t *testing.T) {
	svc, bookings, _ := newBookingService()
	bookings.byID["b1"] = &domain.Booking{ID: "b1", ParentID: "parent-1", TrainerID: "trainer-1", Status: domain.BookingPending}
	bookings.byID["b2"] = &domain.Booking{ID: "b2", ParentID: "parent-2", TrainerID: "trainer-1", Status: domain.BookingPending}
	ctx := context.Background()

	outsider := &domain.User{ID: "parent-2", Role: domain.RoleParent}
	if _, err := svc.Get(ctx, outsider, "b1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-participant must be denied, got %v", err)
	}

	mine, err := svc.List(ctx, outsider, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "b2" {
		t.Fatalf("parent must only see own bookings, got %+v", mine)
	}

	trainer := &domain.User{ID: "trainer-1", Role: domain.RoleTrainer}
	theirs, err := svc.List(ctx, trainer, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(theirs) != 2 {
		t.Fatalf("trainer must see both bookings, got %d", len(theirs))
	}

	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	all, err := svc.List(ctx, admin, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin must see everything, got %d", len(all))
	}
}
