package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// InvoiceSvc implements admin-issued, parent-owned invoicing.
type InvoiceSvc struct {
	repo ports.InvoiceRepository
	log  zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, log zerolog.Logger) *InvoiceSvc {
	return &InvoiceSvc{repo: repo, log: log}
}

func (s *InvoiceSvc) Issue(ctx context.Context, in ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if in.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInvoice)
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ID:            uuid.NewString(),
		ParentID:      in.ParentID,
		BookingID:     in.BookingID,
		AmountCents:   in.AmountCents,
		Currency:      "ZAR",
		Status:        domain.InvoicePending,
		DueDate:       in.DueDate,
		InvoiceNumber: generateInvoiceNumber(),
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		s.log.Error().Err(err).Str("parent_id", in.ParentID).Msg("failed to issue invoice")
		return nil, err
	}
	s.log.Info().Str("invoice_number", created.InvoiceNumber).Str("parent_id", in.ParentID).Msg("invoice issued")
	return created, nil
}

func (s *InvoiceSvc) Get(ctx context.Context, viewer *domain.User, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessResource(viewer.Role, invoice.ParentID, viewer.ID) {
		return nil, domain.ErrForbidden
	}
	return invoice, nil
}

func (s *InvoiceSvc) List(ctx context.Context, viewer *domain.User, status domain.InvoiceStatus) ([]*domain.Invoice, error) {
	filter := ports.InvoiceFilter{Status: status}
	if viewer.Role == domain.RoleParent {
		filter.ParentID = viewer.ID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus transitions the invoice. Marking paid stamps paid_at; parents
// may not change invoice status at all.
func (s *InvoiceSvc) UpdateStatus(ctx context.Context, viewer *domain.User, invoiceID string, next domain.InvoiceStatus) (*domain.Invoice, error) {
	if !domain.HasPermission(viewer.Role, domain.RoleTrainer) {
		return nil, domain.ErrForbidden
	}

	invoice, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, invoice.Status, next)
	}

	invoice.Status = next
	invoice.UpdatedAt = time.Now().UTC()
	if next == domain.InvoicePaid {
		paidAt := invoice.UpdatedAt
		invoice.PaidAt = &paidAt
	}

	updated, err := s.repo.Update(ctx, invoice)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("invoice_number", updated.InvoiceNumber).Str("status", string(next)).Msg("invoice status updated")
	return updated, nil
}

// generateInvoiceNumber returns a unique invoice number in the format JD-XXXXXXXX.
func generateInvoiceNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("JD-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("JD-%08X", b)
}
