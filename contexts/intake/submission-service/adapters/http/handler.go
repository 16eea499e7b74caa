package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"formdesk/contexts/intake/submission-service/application/commands"
	"formdesk/contexts/intake/submission-service/application/queries"
	"formdesk/contexts/intake/submission-service/domain/entities"
	httptransport "formdesk/contexts/intake/submission-service/transport/http"
)

type Handler struct {
	CreateSubmission commands.CreateSubmissionUseCase
	ListSubmissions  queries.ListSubmissionsQuery
	Logger           *slog.Logger
}

func (h Handler) CreateSubmissionHandler(
	ctx context.Context,
	principalID string,
	req httptransport.CreateSubmissionRequest,
) (httptransport.CreateSubmissionResponse, error) {
	item, err := h.CreateSubmission.Execute(ctx, commands.CreateSubmissionCommand{
		PrincipalID: principalID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		JobTitle:    req.JobTitle,
		Message:     req.Message,
		Category:    req.Category,
		Priority:    entities.Priority(req.Priority),
	})
	if err != nil {
		return httptransport.CreateSubmissionResponse{}, err
	}
	return httptransport.CreateSubmissionResponse{Submission: mapSubmission(item)}, nil
}

func (h Handler) ListSubmissionsHandler(
	ctx context.Context,
	principalID string,
) (httptransport.ListSubmissionsResponse, error) {
	items, err := h.ListSubmissions.Execute(ctx, principalID)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	result := make([]httptransport.SubmissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSubmission(item))
	}
	return httptransport.ListSubmissionsResponse{Items: result}, nil
}

func mapSubmission(item entities.FormSubmission) httptransport.SubmissionDTO {
	return httptransport.SubmissionDTO{
		ID:        item.SubmissionID,
		UserID:    item.UserID,
		FullName:  item.FullName,
		Email:     item.Email,
		Phone:     item.Phone,
		Company:   item.Company,
		JobTitle:  item.JobTitle,
		Message:   item.Message,
		Category:  item.Category,
		Priority:  string(item.Priority),
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
