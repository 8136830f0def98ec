package ports

import (
	"context"

	"github.com/justdogs/training-system/internal/core/domain"
)

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	TotalBookingsToday int   `json:"total_bookings_today"`
	TotalDogs          int   `json:"total_dogs"`
	TotalTrainers      int   `json:"total_trainers"`
	MonthRevenueCents  int64 `json:"month_revenue_cents"`
	PendingBookings    int   `json:"pending_bookings"`
	OverdueInvoices    int   `json:"overdue_invoices"`
}

// TrainerStats aggregates the figures shown on a trainer's dashboard.
type TrainerStats struct {
	TodaySessions     int `json:"today_sessions"`
	UpcomingSessions  int `json:"upcoming_sessions"`
	TotalDogsAssigned int `json:"total_dogs_assigned"`
	UnreadMessages    int `json:"unread_messages"`
}

// ParentStats aggregates the figures shown on a parent's dashboard.
type ParentStats struct {
	TotalDogs               int   `json:"total_dogs"`
	UpcomingSessions        int   `json:"upcoming_sessions"`
	OutstandingBalanceCents int64 `json:"outstanding_balance_cents"`
	UnreadMessages          int   `json:"unread_messages"`
}

// StatsService computes the role-specific dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	Trainer(ctx context.Context, trainer *domain.User) (*TrainerStats, error)
	Parent(ctx context.Context, parent *domain.User) (*ParentStats, error)
}
