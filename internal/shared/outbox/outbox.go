package outbox

import "time"

const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// Message is an outbox row persisted with the state change that produced it.
// The relay worker reads pending rows and publishes them to the bus.
type Message struct {
	ID         string
	EventType  string
	EntityType string
	EntityID   string
	ActorID    string
	Payload    []byte
	Status     string
	RetryCount int
	CreatedAt  time.Time
}
