package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingType classifies the service being booked.
type BookingType string

const (
	BookingTraining      BookingType = "training"
	BookingDaycare       BookingType = "daycare"
	BookingBehavioral    BookingType = "behavioral"
	BookingSocialization BookingType = "socialization"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidBooking = errors.New("invalid booking")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidBookingType reports whether t is one of the supported booking types.
func ValidBookingType(t BookingType) bool {
	switch t {
	case BookingTraining, BookingDaycare, BookingBehavioral, BookingSocialization:
		return true
	}
	return false
}

// Booking links a dog, its parent, and a trainer for a scheduled service.
type Booking struct {
	ID                  string        `json:"id" bson:"_id,omitempty"`
	DogID               string        `json:"dog_id" bson:"dog_id"`
	TrainerID           string        `json:"trainer_id" bson:"trainer_id"`
	ParentID            string        `json:"parent_id" bson:"parent_id"`
	BookingType         BookingType   `json:"booking_type" bson:"booking_type"`
	Status              BookingStatus `json:"status" bson:"status"`
	StartTime           time.Time     `json:"start_time" bson:"start_time"`
	EndTime             time.Time     `json:"end_time" bson:"end_time"`
	SpecialInstructions string        `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	Location            string        `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt           time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" bson:"updated_at"`
}
