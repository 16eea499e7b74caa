package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/ports"
	"formdesk/internal/shared/events"
)

// OutboxRelay drains pending admin-audit rows and publishes them to the bus.
// Rows are marked published only after a successful publish, so a crash
// between the two can produce duplicates; consumers dedupe on event_id.
type OutboxRelay struct {
	Outbox    ports.AuditOutbox
	Publisher ports.EventPublisher
	Clock     ports.Clock
	Topic     string
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)

	batchSize := r.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	pending, err := r.Outbox.ListPendingAudits(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, message := range pending {
		var payload map[string]any
		if len(message.Payload) > 0 {
			_ = json.Unmarshal(message.Payload, &payload)
		}
		envelope := events.Envelope{
			EventID:        message.ID,
			EventType:      message.EventType,
			SourceService:  "access-control",
			OccurredAtUTC:  message.CreatedAt,
			EntityType:     message.EntityType,
			EntityID:       message.EntityID,
			PayloadVersion: 1,
			Payload:        payload,
		}
		if err := r.Publisher.Publish(ctx, r.Topic, envelope); err != nil {
			return err
		}
		if err := r.Outbox.MarkAuditPublished(ctx, message.ID, r.Clock.Now().UTC()); err != nil {
			return err
		}
		logger.Info("audit event relayed",
			"event", "audit_relayed",
			"module", "identity-access/access-control",
			"layer", "application",
			"event_id", message.ID,
			"event_type", message.EventType,
		)
	}
	return nil
}
