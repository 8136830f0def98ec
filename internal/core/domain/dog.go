package domain

import (
	"errors"
	"time"
)

var ErrDogNotFound = errors.New("dog not found")

// EmergencyContact is the person to call when the owner is unreachable.
type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Phone        string `json:"phone" bson:"phone"`
	Relationship string `json:"relationship" bson:"relationship"`
}

// Dog is a dog profile owned by a parent user.
type Dog struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	Name             string            `json:"name" bson:"name"`
	Breed            string            `json:"breed" bson:"breed"`
	Age              int               `json:"age" bson:"age"`
	WeightKg         float64           `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	OwnerID          string            `json:"owner_id" bson:"owner_id"`
	MedicalNotes     string            `json:"medical_notes,omitempty" bson:"medical_notes,omitempty"`
	BehavioralNotes  string            `json:"behavioral_notes,omitempty" bson:"behavioral_notes,omitempty"`
	VaccineRecords   string            `json:"vaccine_records,omitempty" bson:"vaccine_records,omitempty"`
	Preferences      string            `json:"preferences,omitempty" bson:"preferences,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	PhotoURL         string            `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}
