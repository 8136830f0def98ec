package ports

import (
	"context"
	"time"

	"github.com/justdogs/training-system/internal/core/domain"
)

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	ParentID string
	Status   domain.InvoiceStatus
}

// InvoiceRepository defines persistence operations for invoices.
// List results are ordered by creation time descending.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, error)
}

// CreateInvoiceInput carries the data for a new invoice. Amounts are ZAR cents.
type CreateInvoiceInput struct {
	ParentID    string
	BookingID   string
	AmountCents int64
	DueDate     time.Time
	Description string
}

// InvoiceService implements admin-issued, parent-owned invoicing. Status
// changes follow the pending/paid/overdue/cancelled state machine; marking
// paid stamps paid_at.
type InvoiceService interface {
	Issue(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, viewer *domain.User, invoiceID string) (*domain.Invoice, error)
	List(ctx context.Context, viewer *domain.User, status domain.InvoiceStatus) ([]*domain.Invoice, error)
	UpdateStatus(ctx context.Context, viewer *domain.User, invoiceID string, next domain.InvoiceStatus) (*domain.Invoice, error)
}
