package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
)

func newStatsService() (*StatsSvc, *stubBookingRepo, *stubInvoiceRepo, *stubMessageRepo) {
	bookings := newStubBookingRepo()
	invoices := newStubInvoiceRepo()
	messages := newStubMessageRepo()
	svc := NewStatsService(newStubUserRepo(), newStubDogRepo(), bookings, invoices, messages, zerolog.Nop())
	return svc, bookings, invoices, messages
}

func TestStatsService_Trainer(t *testing.T) {
	svc, bookings, _, messages := newStatsService()
	now := time.Now().UTC()

	// Two future confirmed bookings for t1, one already finished, one still
	// pending and one belonging to another trainer.
	bookings.byID["b1"] = &domain.Booking{ID: "b1", TrainerID: "t1", DogID: "d1", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, 2)}
	bookings.byID["b2"] = &domain.Booking{ID: "b2", TrainerID: "t1", DogID: "d2", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, 5)}
	bookings.byID["b3"] = &domain.Booking{ID: "b3", TrainerID: "t1", DogID: "d1", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, -3)}
	bookings.byID["b4"] = &domain.Booking{ID: "b4", TrainerID: "t1", DogID: "d3", Status: domain.BookingPending, StartTime: now.AddDate(0, 0, 4)}
	bookings.byID["b5"] = &domain.Booking{ID: "b5", TrainerID: "t2", DogID: "d4", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, 1)}

	messages.byID["m1"] = &domain.Message{ID: "m1", SenderID: "p1", RecipientID: "t1", Subject: "hi"}

	stats, err := svc.Trainer(context.Background(), &domain.User{ID: "t1", Role: domain.RoleTrainer})
	if err != nil {
		t.Fatalf("Trainer failed: %v", err)
	}
	if stats.UpcomingSessions != 2 {
		t.Fatalf("expected 2 upcoming sessions, got %d", stats.UpcomingSessions)
	}
	if stats.TotalDogsAssigned != 3 {
		t.Fatalf("expected 3 assigned dogs, got %d", stats.TotalDogsAssigned)
	}
	if stats.UnreadMessages != 1 {
		t.Fatalf("expected 1 unread message, got %d", stats.UnreadMessages)
	}
}

func TestStatsService_Parent(t *testing.T) {
	svc, bookings, invoices, _ := newStatsService()
	now := time.Now().UTC()

	bookings.byID["b1"] = &domain.Booking{ID: "b1", ParentID: "p1", DogID: "d1", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, 3)}
	bookings.byID["b2"] = &domain.Booking{ID: "b2", ParentID: "p1", DogID: "d1", Status: domain.BookingConfirmed, StartTime: now.AddDate(0, 0, -1)}

	invoices.byID["i1"] = &domain.Invoice{ID: "i1", ParentID: "p1", Status: domain.InvoicePending, AmountCents: 30_000}
	invoices.byID["i2"] = &domain.Invoice{ID: "i2", ParentID: "p1", Status: domain.InvoiceOverdue, AmountCents: 15_000}
	invoices.byID["i3"] = &domain.Invoice{ID: "i3", ParentID: "p1", Status: domain.InvoicePaid, AmountCents: 99_000}
	invoices.byID["i4"] = &domain.Invoice{ID: "i4", ParentID: "p2", Status: domain.InvoicePending, AmountCents: 5_000}

	stats, err := svc.Parent(context.Background(), &domain.User{ID: "p1", Role: domain.RoleParent})
	if err != nil {
		t.Fatalf("Parent failed: %v", err)
	}
	if stats.UpcomingSessions != 1 {
		t.Fatalf("expected 1 upcoming session, got %d", stats.UpcomingSessions)
	}
	if stats.OutstandingBalanceCents != 45_000 {
		t.Fatalf("expected 45000 outstanding, got %d", stats.OutstandingBalanceCents)
	}
}
