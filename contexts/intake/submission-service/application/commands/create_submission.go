package commands

import (
	"context"
	"log/slog"
	"strings"

	"formdesk/contexts/intake/submission-service/application"
	"formdesk/contexts/intake/submission-service/domain/entities"
	domainerrors "formdesk/contexts/intake/submission-service/domain/errors"
	"formdesk/contexts/intake/submission-service/ports"
)

// CreateSubmissionCommand carries the client-supplied form fields. There is
// deliberately no owner field: the owner is always the authenticated
// requester, whatever the request body claims.
type CreateSubmissionCommand struct {
	PrincipalID string
	FullName    string
	Email       string
	Phone       string
	Company     string
	JobTitle    string
	Message     string
	Category    string
	Priority    entities.Priority
}

type CreateSubmissionUseCase struct {
	Authorizer ports.Authorizer
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc CreateSubmissionUseCase) Execute(ctx context.Context, cmd CreateSubmissionCommand) (entities.FormSubmission, error) {
	if err := uc.Authorizer.AuthorizeCreate(ctx, cmd.PrincipalID); err != nil {
		return entities.FormSubmission{}, err
	}

	submissionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.FormSubmission{}, err
	}

	now := uc.Clock.Now().UTC()
	submission := entities.FormSubmission{
		SubmissionID: submissionID,
		UserID:       strings.TrimSpace(cmd.PrincipalID),
		FullName:     strings.TrimSpace(cmd.FullName),
		Email:        strings.TrimSpace(cmd.Email),
		Phone:        strings.TrimSpace(cmd.Phone),
		Company:      strings.TrimSpace(cmd.Company),
		JobTitle:     strings.TrimSpace(cmd.JobTitle),
		Message:      strings.TrimSpace(cmd.Message),
		Category:     strings.TrimSpace(cmd.Category),
		Priority:     cmd.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !submission.ValidateCreate() {
		if submission.Priority != "" && !entities.IsValidPriority(submission.Priority) {
			return entities.FormSubmission{}, domainerrors.ErrInvalidPriority
		}
		return entities.FormSubmission{}, domainerrors.ErrInvalidSubmissionInput
	}

	if err := uc.Repository.CreateSubmission(ctx, submission); err != nil {
		return entities.FormSubmission{}, err
	}

	application.ResolveLogger(uc.Logger).Info("submission created",
		"event", "submission_created",
		"module", "intake/submission-service",
		"layer", "application",
		"submission_id", submission.SubmissionID,
		"user_id", submission.UserID,
	)
	return submission, nil
}
