package ports

import (
	"context"
	"time"

	"formdesk/contexts/intake/submission-service/domain/entities"
)

// ListScope narrows a listing to one owner unless AllOwners is set.
type ListScope struct {
	AllOwners bool
	OwnerID   string
}

// Authorizer is the access-control decision surface this context consumes.
// Implemented by the identity-access context; this service never re-derives
// role or ban checks on its own.
type Authorizer interface {
	AuthorizeCreate(ctx context.Context, principalID string) error
	AuthorizeList(ctx context.Context, principalID string) (ListScope, error)
}

type SubmissionFilter struct {
	OwnerID string
}

type Repository interface {
	CreateSubmission(ctx context.Context, submission entities.FormSubmission) error
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]entities.FormSubmission, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
