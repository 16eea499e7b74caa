package ports

import (
	"context"
	"time"

	"formdesk/contexts/identity-access/access-control/domain/entities"
	"formdesk/internal/shared/events"
	"formdesk/internal/shared/outbox"
)

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	UserID    string
	Role      *entities.Role
	IsBanned  *bool
	UpdatedAt time.Time
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
	ListProfiles(ctx context.Context) ([]entities.Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (entities.Profile, error)
	SetRole(ctx context.Context, userID string, role entities.Role, now time.Time) error
}

// CredentialProvisioner creates the login credential for a new user and the
// default-role profile that goes with it. It stands in for the external
// identity provider's admin API.
type CredentialProvisioner interface {
	ProvisionUser(ctx context.Context, email string, password string, now time.Time) (string, error)
}

// AuditOutbox persists admin-action audit rows alongside state changes so the
// relay worker can publish them later.
type AuditOutbox interface {
	AppendAudit(ctx context.Context, message outbox.Message) error
	ListPendingAudits(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkAuditPublished(ctx context.Context, messageID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
