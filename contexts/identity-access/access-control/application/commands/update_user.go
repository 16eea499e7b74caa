package commands

import (
	"context"
	"log/slog"
	"strings"

	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/ports"
)

type UpdateUserCommand struct {
	ActorID      string
	TargetUserID string
	Role         *entities.Role
	IsBanned     *bool
}

// UpdateUserUseCase applies admin changes to a profile's role and ban flag.
// The store's single-row update is the only write; concurrent conflicting
// updates resolve last-writer-wins at the store.
type UpdateUserUseCase struct {
	Guard    application.Guard
	Profiles ports.ProfileRepository
	Audit    ports.AuditOutbox
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (entities.Profile, error) {
	banRequested := cmd.IsBanned != nil && *cmd.IsBanned

	_, decision, err := uc.Guard.Check(ctx, cmd.ActorID, entities.AccessRequest{
		Action:       entities.ActionUpdateUser,
		TargetUserID: strings.TrimSpace(cmd.TargetUserID),
		BanRequested: banRequested,
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if err := application.DenyError(decision); err != nil {
		return entities.Profile{}, err
	}

	if strings.TrimSpace(cmd.TargetUserID) == "" {
		return entities.Profile{}, domainerrors.ErrMissingTargetUser
	}
	if cmd.Role == nil && cmd.IsBanned == nil {
		return entities.Profile{}, domainerrors.ErrNoFieldsToUpdate
	}
	if cmd.Role != nil && !entities.IsValidRole(*cmd.Role) {
		return entities.Profile{}, domainerrors.ErrInvalidRole
	}

	updated, err := uc.Profiles.UpdateProfile(ctx, ports.ProfileUpdate{
		UserID:    strings.TrimSpace(cmd.TargetUserID),
		Role:      cmd.Role,
		IsBanned:  cmd.IsBanned,
		UpdatedAt: uc.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.Profile{}, err
	}

	payload := map[string]any{}
	if cmd.Role != nil {
		payload["role"] = string(*cmd.Role)
	}
	if cmd.IsBanned != nil {
		payload["is_banned"] = *cmd.IsBanned
	}
	appendAudit(ctx, uc.Audit, uc.Clock, uc.IDGen, uc.Logger,
		"user_updated", cmd.ActorID, updated.ID, payload)

	application.ResolveLogger(uc.Logger).Info("user updated",
		"event", "user_updated",
		"module", "identity-access/access-control",
		"layer", "application",
		"actor_id", cmd.ActorID,
		"user_id", updated.ID,
	)
	return updated, nil
}
