package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

type stubMessageRepo struct {
	byID map[string]*domain.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byID: make(map[string]*domain.Message)}
}

func cloneMessage(m *domain.Message) *domain.Message {
	clone := *m
	return &clone
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.byID[m.ID] = cloneMessage(m)
	return cloneMessage(m), nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return cloneMessage(m), nil
}

func (r *stubMessageRepo) List(_ context.Context, filter ports.MessageFilter) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.byID {
		if filter.ViewerID != "" && !m.VisibleTo(filter.ViewerID) {
			continue
		}
		if filter.UnreadOnly {
			if m.IsRead() {
				continue
			}
			if !m.IsAnnouncement && m.RecipientID != filter.ViewerID {
				continue
			}
		}
		if !m.MatchesQuery(filter.Search) {
			continue
		}
		out = append(out, cloneMessage(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) SetReadAt(_ context.Context, id string, at time.Time) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	if m.ReadAt == nil {
		stamp := at
		m.ReadAt = &stamp
	}
	return cloneMessage(m), nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.byID, id)
	return nil
}

func newMessageService() (*MessageSvc, *stubMessageRepo) {
	repo := newStubMessageRepo()
	return NewMessageService(repo, zerolog.Nop()), repo
}

func TestMessageService_Send_Direct(t *testing.T) {
	svc, _ := newMessageService()

	msg, err := svc.Send(context.Background(), ports.SendMessageInput{
		SenderID: "trainer-1", RecipientID: "parent-1", Subject: "Progress", Body: "Rex did great today",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if msg.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if msg.IsAnnouncement {
		t.Fatalf("direct message must not be an announcement")
	}
}

func TestMessageService_Send_InvalidShape(t *testing.T) {
	svc, _ := newMessageService()
	ctx := context.Background()

	// Direct message with no recipient.
	if _, err := svc.Send(ctx, ports.SendMessageInput{
		SenderID: "a", Subject: "s", Body: "b",
	}); err != domain.ErrInvalidMessage {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}

	// Announcement with no target roles.
	if _, err := svc.Send(ctx, ports.SendMessageInput{
		SenderID: "a", Subject: "s", Body: "b", Announce: true,
	}); err != domain.ErrInvalidMessage {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}

	// Both recipient and target roles.
	if _, err := svc.Send(ctx, ports.SendMessageInput{
		SenderID: "a", RecipientID: "b", Subject: "s", Body: "b",
		Announce: true, TargetRoles: []domain.Role{domain.RoleParent},
	}); err != domain.ErrInvalidMessage {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}

	// Empty subject.
	if _, err := svc.Send(ctx, ports.SendMessageInput{
		SenderID: "a", RecipientID: "b", Body: "b",
	}); err != domain.ErrInvalidMessage {
		t.Fatalf("expected ErrInvalidMessage for empty subject, got %v", err)
	}
}

func TestMessageService_Inbox_VisibilityAndOrder(t *testing.T) {
	svc, repo := newMessageService()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	seed := []*domain.Message{
		{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "first", Body: "x", CreatedAt: base},
		{ID: "m2", SenderID: "b", RecipientID: "a", Subject: "second", Body: "x", CreatedAt: base.Add(time.Minute)},
		{ID: "m3", SenderID: "c", RecipientID: "d", Subject: "private", Body: "x", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m4", SenderID: "c", IsAnnouncement: true, TargetRoles: []domain.Role{domain.RoleTrainer},
			Subject: "notice", Body: "x", CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, m := range seed {
		repo.byID[m.ID] = m
	}

	inbox, err := svc.Inbox(ctx, "a", "")
	if err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}
	// a sees: sent m1, received m2, announcement m4. Never m3.
	if len(inbox) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(inbox))
	}
	want := []string{"m4", "m2", "m1"}
	for i, m := range inbox {
		if m.ID != want[i] {
			t.Fatalf("expected order %v, got %s at %d", want, m.ID, i)
		}
	}
}

func TestMessageService_Inbox_Search(t *testing.T) {
	svc, repo := newMessageService()
	ctx := context.Background()

	repo.byID["m1"] = &domain.Message{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "Vaccination reminder", Body: "due soon"}
	repo.byID["m2"] = &domain.Message{ID: "m2", SenderID: "a", RecipientID: "b", Subject: "Invoice", Body: "payment OVERDUE"}

	got, err := svc.Inbox(ctx, "a", "overdue")
	if err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m2" {
		t.Fatalf("expected only m2, got %+v", got)
	}
}

func TestMessageService_Get_Invisible(t *testing.T) {
	svc, repo := newMessageService()
	repo.byID["m1"] = &domain.Message{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "s"}

	if _, err := svc.Get(context.Background(), "c", "m1"); err != domain.ErrMessageNotFound {
		t.Fatalf("invisible message must read as not found, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "b", "m1"); err != nil {
		t.Fatalf("recipient must see the message: %v", err)
	}
}

func TestMessageService_MarkRead_Idempotent(t *testing.T) {
	svc, repo := newMessageService()
	ctx := context.Background()
	repo.byID["m1"] = &domain.Message{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "s"}

	first, stamped, err := svc.MarkRead(ctx, "b", "m1")
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if first.ReadAt == nil || !stamped {
		t.Fatalf("expected first MarkRead to stamp read_at")
	}

	second, stamped, err := svc.MarkRead(ctx, "b", "m1")
	if err != nil {
		t.Fatalf("second MarkRead failed: %v", err)
	}
	if stamped {
		t.Fatalf("re-marking must report no stamp")
	}
	if !second.ReadAt.Equal(*first.ReadAt) {
		t.Fatalf("re-marking must preserve the original timestamp")
	}
}

func TestMessageService_Delete_SenderOrAdmin(t *testing.T) {
	svc, repo := newMessageService()
	ctx := context.Background()
	repo.byID["m1"] = &domain.Message{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "s"}

	// The recipient cannot delete.
	if err := svc.Delete(ctx, "b", domain.RoleParent, "m1"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for recipient, got %v", err)
	}
	// An admin can delete anything.
	if err := svc.Delete(ctx, "root", domain.RoleAdmin, "m1"); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, ok := repo.byID["m1"]; ok {
		t.Fatalf("message should be gone")
	}
}

func TestMessageService_Unread(t *testing.T) {
	svc, repo := newMessageService()
	ctx := context.Background()

	read := time.Now().UTC()
	repo.byID["m1"] = &domain.Message{ID: "m1", SenderID: "a", RecipientID: "b", Subject: "s"}
	repo.byID["m2"] = &domain.Message{ID: "m2", SenderID: "a", RecipientID: "b", Subject: "s", ReadAt: &read}
	repo.byID["m3"] = &domain.Message{ID: "m3", SenderID: "b", RecipientID: "c", Subject: "s"}

	unread, err := svc.Unread(ctx, "b")
	if err != nil {
		t.Fatalf("Unread failed: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != "m1" {
		t.Fatalf("expected only m1 unread, got %+v", unread)
	}
}
