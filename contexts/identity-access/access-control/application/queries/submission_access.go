package queries

import (
	"context"
	"log/slog"

	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/domain/entities"
	intakeports "formdesk/contexts/intake/submission-service/ports"
)

// SubmissionAccessQuery is the authorization surface the intake context
// consumes through its Authorizer port. Decisions come from the same
// evaluator as every other action; this only translates the scope type.
type SubmissionAccessQuery struct {
	Guard  application.Guard
	Logger *slog.Logger
}

func (q SubmissionAccessQuery) AuthorizeCreate(ctx context.Context, principalID string) error {
	_, decision, err := q.Guard.Check(ctx, principalID, entities.AccessRequest{
		Action: entities.ActionCreateSubmission,
	})
	if err != nil {
		return err
	}
	return application.DenyError(decision)
}

func (q SubmissionAccessQuery) AuthorizeList(ctx context.Context, principalID string) (intakeports.ListScope, error) {
	_, decision, err := q.Guard.Check(ctx, principalID, entities.AccessRequest{
		Action: entities.ActionListSubmissions,
	})
	if err != nil {
		return intakeports.ListScope{}, err
	}
	if err := application.DenyError(decision); err != nil {
		return intakeports.ListScope{}, err
	}
	return intakeports.ListScope{
		AllOwners: decision.Scope.AllRows,
		OwnerID:   decision.Scope.OwnerID,
	}, nil
}
