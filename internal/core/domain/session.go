package domain

import (
	"errors"
	"time"
)

var ErrTrainingSessionNotFound = errors.New("training session not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// TrainingSession records what happened during a booked session. Ratings use
// a 1-5 scale; zero means not rated.
type TrainingSession struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	BookingID      string    `json:"booking_id" bson:"booking_id"`
	TrainerID      string    `json:"trainer_id" bson:"trainer_id"`
	DogID          string    `json:"dog_id" bson:"dog_id"`
	Attended       bool      `json:"attended" bson:"attended"`
	Notes          string    `json:"notes" bson:"notes"`
	ProgressRating int       `json:"progress_rating,omitempty" bson:"progress_rating,omitempty"`
	BehaviorRating int       `json:"behavior_rating,omitempty" bson:"behavior_rating,omitempty"`
	Photos         []string  `json:"photos,omitempty" bson:"photos,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
