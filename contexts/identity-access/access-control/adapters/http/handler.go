package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"formdesk/contexts/identity-access/access-control/application/commands"
	"formdesk/contexts/identity-access/access-control/application/queries"
	"formdesk/contexts/identity-access/access-control/domain/entities"
	httptransport "formdesk/contexts/identity-access/access-control/transport/http"
)

type Handler struct {
	Profiles   queries.ProfileQueries
	CreateUser commands.CreateUserUseCase
	UpdateUser commands.UpdateUserUseCase
	Logger     *slog.Logger
}

func (h Handler) GetOwnProfileHandler(ctx context.Context, principalID string) (httptransport.ProfileResponse, error) {
	profile, err := h.Profiles.GetOwnProfile(ctx, principalID)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Profile: mapProfile(profile)}, nil
}

func (h Handler) ListUsersHandler(ctx context.Context, principalID string) (httptransport.ListUsersResponse, error) {
	profiles, err := h.Profiles.ListUsers(ctx, principalID)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	items := make([]httptransport.ProfileDTO, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, mapProfile(profile))
	}
	return httptransport.ListUsersResponse{Items: items}, nil
}

func (h Handler) CreateUserHandler(
	ctx context.Context,
	principalID string,
	req httptransport.CreateUserRequest,
) (httptransport.CreateUserResponse, error) {
	userID, err := h.CreateUser.Execute(ctx, commands.CreateUserCommand{
		ActorID:  principalID,
		Email:    req.Email,
		Password: req.Password,
		Role:     entities.Role(req.Role),
	})
	if err != nil {
		return httptransport.CreateUserResponse{}, err
	}
	return httptransport.CreateUserResponse{UserID: userID}, nil
}

func (h Handler) UpdateUserHandler(
	ctx context.Context,
	principalID string,
	req httptransport.UpdateUserRequest,
) (httptransport.ProfileResponse, error) {
	var role *entities.Role
	if req.Role != nil {
		value := entities.Role(*req.Role)
		role = &value
	}
	profile, err := h.UpdateUser.Execute(ctx, commands.UpdateUserCommand{
		ActorID:      principalID,
		TargetUserID: req.UserID,
		Role:         role,
		IsBanned:     req.IsBanned,
	})
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Profile: mapProfile(profile)}, nil
}

func mapProfile(profile entities.Profile) httptransport.ProfileDTO {
	return httptransport.ProfileDTO{
		ID:        profile.ID,
		Email:     profile.Email,
		Role:      string(profile.Role),
		IsBanned:  profile.IsBanned,
		CreatedAt: profile.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
