package workers

import (
	"context"
	"testing"
	"time"

	"formdesk/contexts/identity-access/access-control/adapters/memory"
	"formdesk/internal/platform/messaging"
	"formdesk/internal/shared/outbox"
)

func TestOutboxRelayPublishesPendingAudits(t *testing.T) {
	store := memory.NewStore(nil)
	bus := messaging.NewBus(nil)
	events := bus.Subscribe("access.audit", 4)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := store.AppendAudit(context.Background(), outbox.Message{
		ID:         "audit-1",
		EventType:  "user_updated",
		EntityType: "profile",
		EntityID:   "user-1",
		ActorID:    "admin-1",
		Payload:    []byte(`{"is_banned":true}`),
		Status:     outbox.StatusPending,
		CreatedAt:  now,
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	relay := OutboxRelay{
		Outbox:    store,
		Publisher: bus,
		Clock:     store,
		Topic:     "access.audit",
		BatchSize: 10,
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	select {
	case event := <-events:
		if event.EventID != "audit-1" || event.EventType != "user_updated" {
			t.Fatalf("unexpected event %+v", event)
		}
	default:
		t.Fatalf("expected event on bus")
	}

	pending, err := store.ListPendingAudits(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected audit marked published, %d still pending", len(pending))
	}
}
