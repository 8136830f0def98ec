package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// StatsSvc computes the role-specific dashboard aggregates by querying the
// entity repositories. Counts are computed in memory; collections are small
// for a single training business.
type StatsSvc struct {
	users    ports.UserRepository
	dogs     ports.DogRepository
	bookings ports.BookingRepository
	invoices ports.InvoiceRepository
	messages ports.MessageRepository
	log      zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	dogs ports.DogRepository,
	bookings ports.BookingRepository,
	invoices ports.InvoiceRepository,
	messages ports.MessageRepository,
	log zerolog.Logger,
) *StatsSvc {
	return &StatsSvc{
		users:    users,
		dogs:     dogs,
		bookings: bookings,
		invoices: invoices,
		messages: messages,
		log:      log,
	}
}

func (s *StatsSvc) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}

	dogs, err := s.dogs.List(ctx, ports.DogFilter{})
	if err != nil {
		return nil, err
	}
	stats.TotalDogs = len(dogs)

	trainers, err := s.users.List(ctx, ports.UserFilter{Role: domain.RoleTrainer})
	if err != nil {
		return nil, err
	}
	stats.TotalTrainers = len(trainers)

	dayStart, dayEnd := dayBounds(time.Now().UTC())
	today, err := s.bookings.List(ctx, ports.BookingFilter{From: dayStart, To: dayEnd})
	if err != nil {
		return nil, err
	}
	stats.TotalBookingsToday = len(today)

	pending, err := s.bookings.List(ctx, ports.BookingFilter{Status: domain.BookingPending})
	if err != nil {
		return nil, err
	}
	stats.PendingBookings = len(pending)

	invoices, err := s.invoices.List(ctx, ports.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(dayStart.Year(), dayStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	for _, inv := range invoices {
		if inv.Status == domain.InvoiceOverdue {
			stats.OverdueInvoices++
		}
		if inv.Status == domain.InvoicePaid && inv.PaidAt != nil && !inv.PaidAt.Before(monthStart) {
			stats.MonthRevenueCents += inv.AmountCents
		}
	}

	return stats, nil
}

func (s *StatsSvc) Trainer(ctx context.Context, trainer *domain.User) (*ports.TrainerStats, error) {
	stats := &ports.TrainerStats{}

	dayStart, dayEnd := dayBounds(time.Now().UTC())
	today, err := s.bookings.List(ctx, ports.BookingFilter{TrainerID: trainer.ID, From: dayStart, To: dayEnd})
	if err != nil {
		return nil, err
	}
	stats.TodaySessions = len(today)

	all, err := s.bookings.List(ctx, ports.BookingFilter{TrainerID: trainer.ID})
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	assigned := make(map[string]struct{})
	for _, b := range all {
		assigned[b.DogID] = struct{}{}
		if b.Status == domain.BookingConfirmed && b.StartTime.After(now) {
			stats.UpcomingSessions++
		}
	}
	stats.TotalDogsAssigned = len(assigned)

	unread, err := s.messages.List(ctx, ports.MessageFilter{ViewerID: trainer.ID, UnreadOnly: true})
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = len(unread)

	return stats, nil
}

func (s *StatsSvc) Parent(ctx context.Context, parent *domain.User) (*ports.ParentStats, error) {
	stats := &ports.ParentStats{}

	dogs, err := s.dogs.List(ctx, ports.DogFilter{OwnerID: parent.ID})
	if err != nil {
		return nil, err
	}
	stats.TotalDogs = len(dogs)

	now := time.Now().UTC()
	confirmed, err := s.bookings.List(ctx, ports.BookingFilter{ParentID: parent.ID, Status: domain.BookingConfirmed})
	if err != nil {
		return nil, err
	}
	for _, b := range confirmed {
		if b.StartTime.After(now) {
			stats.UpcomingSessions++
		}
	}

	invoices, err := s.invoices.List(ctx, ports.InvoiceFilter{ParentID: parent.ID})
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.Status == domain.InvoicePending || inv.Status == domain.InvoiceOverdue {
			stats.OutstandingBalanceCents += inv.AmountCents
		}
	}

	unread, err := s.messages.List(ctx, ports.MessageFilter{ViewerID: parent.ID, UnreadOnly: true})
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = len(unread)

	return stats, nil
}

// dayBounds returns UTC midnight today and midnight tomorrow.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
