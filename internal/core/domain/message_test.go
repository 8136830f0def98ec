package domain

import (
	"testing"
	"time"
)

func TestMessageValidate_Direct(t *testing.T) {
	m := &Message{SenderID: "a", RecipientID: "b", Subject: "hi", Body: "hello"}
	if err := m.Validate(); err != nil {
		t.Fatalf("direct message should validate: %v", err)
	}

	m.RecipientID = ""
	if err := m.Validate(); err != ErrInvalidMessage {
		t.Fatalf("direct message without recipient: expected ErrInvalidMessage, got %v", err)
	}

	m.RecipientID = "b"
	m.TargetRoles = []Role{RoleParent}
	if err := m.Validate(); err != ErrInvalidMessage {
		t.Fatalf("direct message with target roles: expected ErrInvalidMessage, got %v", err)
	}
}

func TestMessageValidate_Announcement(t *testing.T) {
	m := &Message{SenderID: "a", IsAnnouncement: true, TargetRoles: []Role{RoleParent, RoleTrainer}}
	if err := m.Validate(); err != nil {
		t.Fatalf("announcement should validate: %v", err)
	}

	m.TargetRoles = nil
	if err := m.Validate(); err != ErrInvalidMessage {
		t.Fatalf("announcement without target roles: expected ErrInvalidMessage, got %v", err)
	}

	m.TargetRoles = []Role{"superuser"}
	if err := m.Validate(); err != ErrInvalidMessage {
		t.Fatalf("announcement with unknown role: expected ErrInvalidMessage, got %v", err)
	}

	m.TargetRoles = []Role{RoleParent}
	m.RecipientID = "b"
	if err := m.Validate(); err != ErrInvalidMessage {
		t.Fatalf("announcement with recipient: expected ErrInvalidMessage, got %v", err)
	}
}

func TestMessageVisibleTo(t *testing.T) {
	direct := &Message{SenderID: "a", RecipientID: "b"}
	if !direct.VisibleTo("a") || !direct.VisibleTo("b") {
		t.Fatalf("sender and recipient must see a direct message")
	}
	if direct.VisibleTo("c") {
		t.Fatalf("third parties must not see a direct message")
	}

	// Announcements are visible to everyone, regardless of target roles.
	ann := &Message{SenderID: "a", IsAnnouncement: true, TargetRoles: []Role{RoleTrainer}}
	if !ann.VisibleTo("c") {
		t.Fatalf("announcements must be visible to every viewer")
	}
}

func TestMessageMatchesQuery(t *testing.T) {
	m := &Message{Subject: "Vaccination Reminder", Body: "Rex is due for a booster"}

	if !m.MatchesQuery("") {
		t.Fatalf("empty query matches everything")
	}
	if !m.MatchesQuery("VACCINATION") {
		t.Fatalf("subject match must be case-insensitive")
	}
	if !m.MatchesQuery("booster") {
		t.Fatalf("body match expected")
	}
	if m.MatchesQuery("invoice") {
		t.Fatalf("unrelated query must not match")
	}
}

func TestMessageIsRead(t *testing.T) {
	m := &Message{}
	if m.IsRead() {
		t.Fatalf("new message must be unread")
	}
	now := time.Now()
	m.ReadAt = &now
	if !m.IsRead() {
		t.Fatalf("message with read_at must be read")
	}
}
