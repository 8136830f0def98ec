package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// validInvoiceTransitions defines the allowed state machine transitions.
// Paid and cancelled are terminal.
var validInvoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending: {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue: {InvoicePaid, InvoiceCancelled},
}

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidInvoice  = errors.New("invalid invoice")
)

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range validInvoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invoice bills a parent for services rendered. AmountCents is in ZAR cents.
type Invoice struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	ParentID        string        `json:"parent_id" bson:"parent_id"`
	BookingID       string        `json:"booking_id,omitempty" bson:"booking_id,omitempty"`
	AmountCents     int64         `json:"amount_cents" bson:"amount_cents"`
	Currency        string        `json:"currency" bson:"currency"`
	Status          InvoiceStatus `json:"status" bson:"status"`
	DueDate         time.Time     `json:"due_date" bson:"due_date"`
	InvoiceNumber   string        `json:"invoice_number" bson:"invoice_number"`
	Description     string        `json:"description" bson:"description"`
	PaymentProofURL string        `json:"payment_proof_url,omitempty" bson:"payment_proof_url,omitempty"`
	PaidAt          *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
