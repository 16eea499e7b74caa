package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/ports"
	"formdesk/internal/shared/outbox"
)

func TestProvisionUserCreatesProfileAndCredential(t *testing.T) {
	store := NewStore(nil)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	userID, err := store.ProvisionUser(context.Background(), "New@Example.com", "s3cret", now)
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	profile, err := store.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", profile.Email)
	}
	if profile.Role != entities.RoleBasic {
		t.Fatalf("expected default role, got %s", profile.Role)
	}

	if _, err := store.ProvisionUser(context.Background(), "new@example.com", "other", now); !errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestUpdateProfilePartialFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore([]entities.Profile{
		{ID: "user-1", Email: "user@example.com", Role: entities.RoleBasic, CreatedAt: now, UpdatedAt: now},
	})

	banned := true
	updated, err := store.UpdateProfile(context.Background(), ports.ProfileUpdate{
		UserID:    "user-1",
		IsBanned:  &banned,
		UpdatedAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.IsBanned {
		t.Fatalf("expected ban flag set")
	}
	if updated.Role != entities.RoleBasic {
		t.Fatalf("expected role untouched, got %s", updated.Role)
	}
	if !updated.UpdatedAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected updated_at stamped")
	}
}

func TestAuditOutboxLifecycle(t *testing.T) {
	store := NewStore(nil)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	message := outbox.Message{
		ID:        "audit-1",
		EventType: "user_updated",
		Status:    outbox.StatusPending,
		CreatedAt: now,
	}
	if err := store.AppendAudit(context.Background(), message); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	pending, err := store.ListPendingAudits(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "audit-1" {
		t.Fatalf("expected one pending audit, got %+v", pending)
	}

	if err := store.MarkAuditPublished(context.Background(), "audit-1", now.Add(time.Minute)); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingAudits(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending audits after publish, got %d", len(pending))
	}
}
