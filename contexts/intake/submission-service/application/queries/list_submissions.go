package queries

import (
	"context"
	"log/slog"

	"formdesk/contexts/intake/submission-service/domain/entities"
	"formdesk/contexts/intake/submission-service/ports"
)

type ListSubmissionsQuery struct {
	Authorizer ports.Authorizer
	Repository ports.Repository
	Logger     *slog.Logger
}

// Execute lists submissions under the scope the authorizer granted: every
// row for admins, only the requester's rows otherwise. Ordering is fixed at
// most-recent-first by the repository.
func (q ListSubmissionsQuery) Execute(ctx context.Context, principalID string) ([]entities.FormSubmission, error) {
	scope, err := q.Authorizer.AuthorizeList(ctx, principalID)
	if err != nil {
		return nil, err
	}

	filter := ports.SubmissionFilter{}
	if !scope.AllOwners {
		filter.OwnerID = scope.OwnerID
	}
	return q.Repository.ListSubmissions(ctx, filter)
}
